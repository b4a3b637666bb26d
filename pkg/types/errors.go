package types

import "errors"

// Validation errors shared across components.
var (
	ErrNoKeywords      = errors.New("keyword set is empty")
	ErrRootRequired    = errors.New("root directory is required")
	ErrUnknownStrategy = errors.New("unknown worker strategy")
)
