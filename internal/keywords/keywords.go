// Package keywords loads newline-delimited keyword lists.
package keywords

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Parse reads one keyword per line from r. Surrounding whitespace is
// trimmed, blank lines are dropped, order is preserved and duplicates
// are kept.
func Parse(r io.Reader) ([]string, error) {
	var kws []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		kw := strings.TrimSpace(sc.Text())
		if kw == "" {
			continue
		}
		kws = append(kws, kw)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("keywords: read: %w", err)
	}
	return kws, nil
}

// Load reads a keyword file from fsys.
func Load(fsys billy.Filesystem, path string) ([]string, error) {
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("keywords: open %q: %w", path, err)
	}
	return Parse(bytes.NewReader(data))
}
