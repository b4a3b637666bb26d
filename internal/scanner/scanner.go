package scanner

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Scanner checks files for substring occurrences of a fixed keyword set.
// It carries everything a worker needs for matching and never mutates
// shared state; Scan's return value is its only output.
type Scanner struct {
	fs       billy.Filesystem
	keywords []string
	needles  []string // lowercased copies when case-insensitive
	fold     bool
	logger   *log.Logger
}

// New prepares a Scanner. When caseInsensitive is set, keywords are
// lowercased once up front and file content is lowercased per scan.
func New(fsys billy.Filesystem, keywords []string, caseInsensitive bool, logger *log.Logger) *Scanner {
	s := &Scanner{
		fs:       fsys,
		keywords: keywords,
		needles:  keywords,
		fold:     caseInsensitive,
		logger:   logger,
	}
	if caseInsensitive {
		s.needles = make([]string, len(keywords))
		for i, kw := range keywords {
			s.needles[i] = strings.ToLower(kw)
		}
	}
	return s
}

// Scan reads the file at path and returns the keywords it contains, in
// keyword-set order, each at most once. A file that cannot be read or is
// not valid UTF-8 contributes no matches: a warning is logged and scanning
// moves on.
func (s *Scanner) Scan(path string) []string {
	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		s.logger.Printf("[WARN] cannot read %s: %v", path, err)
		return nil
	}
	if !utf8.Valid(data) {
		s.logger.Printf("[WARN] cannot read %s: not valid UTF-8 text", path)
		return nil
	}

	content := string(data)
	if s.fold {
		content = strings.ToLower(content)
	}

	var matched []string
	seen := make(map[string]struct{}, len(s.keywords))
	for i, needle := range s.needles {
		kw := s.keywords[i]
		if _, dup := seen[kw]; dup {
			continue
		}
		if strings.Contains(content, needle) {
			matched = append(matched, kw)
			seen[kw] = struct{}{}
		}
	}
	return matched
}
