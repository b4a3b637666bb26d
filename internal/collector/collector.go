package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Collector enumerates files under a root directory.
type Collector struct {
	fs billy.Filesystem
}

// New creates a Collector over the given filesystem.
func New(fsys billy.Filesystem) *Collector {
	return &Collector{fs: fsys}
}

// Collect walks root recursively and returns every regular file, in lexical
// walk order. If extensions is non-empty, only files whose extension matches
// one of its entries (compared lowercased) are kept. Extension entries may be
// given with or without the leading dot.
func (c *Collector) Collect(root string, extensions []string) ([]string, error) {
	allowed := normalizeExtensions(extensions)

	var files []string
	err := util.Walk(c.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if len(allowed) > 0 {
			ext := strings.ToLower(filepath.Ext(path))
			if _, ok := allowed[ext]; !ok {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collector: walk %q: %w", root, err)
	}
	return files, nil
}

// normalizeExtensions lowercases each entry and ensures a leading dot.
func normalizeExtensions(extensions []string) map[string]struct{} {
	if len(extensions) == 0 {
		return nil
	}
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = struct{}{}
	}
	return allowed
}
