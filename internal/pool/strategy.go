package pool

import (
	"context"
	"fmt"

	"github.com/kwscan/kwscan-mcp/internal/partition"
	"github.com/kwscan/kwscan-mcp/internal/scanner"
	"github.com/kwscan/kwscan-mcp/pkg/types"
)

// Strategy names.
const (
	StrategyIsolated = "isolated"
	StrategyShared   = "shared"
)

// Strategy executes a Scanner over a set of chunks, one worker per chunk,
// and returns the merged keyword -> paths result. Implementations differ
// only in how partial results travel back to the caller; the partitioning
// and matching contract is identical.
type Strategy interface {
	// Name identifies the strategy ("isolated" or "shared").
	Name() string

	// Run blocks until every worker has finished or ctx is cancelled.
	// Chunks must be non-empty and non-overlapping; each is assigned to
	// exactly one worker, with no work-stealing or rebalancing.
	Run(ctx context.Context, sc *scanner.Scanner, chunks []partition.Chunk) (types.Result, error)
}

// ForName resolves a strategy by name. An empty name selects the shared
// strategy.
func ForName(name string) (Strategy, error) {
	switch name {
	case StrategyIsolated:
		return &Isolated{}, nil
	case StrategyShared, "":
		return &Shared{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownStrategy, name)
	}
}
