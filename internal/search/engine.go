package search

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kwscan/kwscan-mcp/internal/collector"
	"github.com/kwscan/kwscan-mcp/internal/partition"
	"github.com/kwscan/kwscan-mcp/internal/pool"
	"github.com/kwscan/kwscan-mcp/internal/scanner"
	"github.com/kwscan/kwscan-mcp/pkg/types"
)

// cacheSize bounds the response cache; least recently used entries evict.
const cacheSize = 1000

// Request contains the parameters of one search.
type Request struct {
	Root            string   // directory to scan, recursive
	Keywords        []string // substring patterns, order preserved
	AllowExtensions []string // e.g. ".txt"; empty means all files
	CaseInsensitive bool
	Strategy        string        // pool strategy name; empty selects shared
	Workers         int           // 0 = max(1, min(files, NumCPU))
	UseCache        bool          // serve and store cached responses
	CacheTTL        time.Duration // cache entry lifetime (default 1h)
}

// Response contains the search result and run metadata.
type Response struct {
	Result       types.Result
	FilesScanned int
	Workers      int
	Strategy     string
	Duration     time.Duration
	CacheHit     bool
}

// Engine orchestrates a search: collect files, partition them, dispatch the
// worker pool, and merge partial results.
type Engine struct {
	fs        billy.Filesystem
	collector *collector.Collector
	logger    *log.Logger
	cache     *lru.Cache[[32]byte, *cacheEntry]
}

// New creates an Engine over the given filesystem. Warnings and the final
// report are written to logger.
func New(fsys billy.Filesystem, logger *log.Logger) *Engine {
	cache, err := lru.New[[32]byte, *cacheEntry](cacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}
	return &Engine{
		fs:        fsys,
		collector: collector.New(fsys),
		logger:    logger,
		cache:     cache,
	}
}

// NewOS creates an Engine over the host filesystem.
func NewOS(logger *log.Logger) *Engine {
	return New(osfs.New("/"), logger)
}

// Search runs one keyword search. It blocks until every worker has
// completed (or ctx is cancelled) and always returns a well-formed, possibly
// empty, mapping on success. Per-file read failures are logged and skipped,
// never surfaced as errors.
func (e *Engine) Search(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	if err := e.validateRequest(&req); err != nil {
		return nil, fmt.Errorf("invalid search request: %w", err)
	}

	strat, err := pool.ForName(req.Strategy)
	if err != nil {
		return nil, err
	}

	if req.UseCache {
		if cached := e.checkCache(req); cached != nil {
			cached.CacheHit = true
			cached.Duration = time.Since(start)
			return cached, nil
		}
	}

	files, err := e.collector.Collect(req.Root, req.AllowExtensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		e.logger.Printf("[INFO] no files found to scan under %s", req.Root)
		return &Response{
			Result:   types.Result{},
			Strategy: strat.Name(),
			Duration: time.Since(start),
		}, nil
	}

	workers := workerCount(req.Workers, len(files))
	chunks := partition.Split(files, workers)
	sc := scanner.New(e.fs, req.Keywords, req.CaseInsensitive, e.logger)

	result, err := strat.Run(ctx, sc, chunks)
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", strat.Name(), err)
	}

	resp := &Response{
		Result:       result,
		FilesScanned: len(files),
		Workers:      len(chunks),
		Strategy:     strat.Name(),
		Duration:     time.Since(start),
	}
	e.logger.Printf("%s search finished in %s for %d files (%d workers)",
		strat.Name(), resp.Duration, resp.FilesScanned, resp.Workers)

	if req.UseCache {
		e.storeInCache(req, resp)
	}
	return resp, nil
}

// validateRequest normalizes defaults and rejects unusable requests.
func (e *Engine) validateRequest(req *Request) error {
	if req.Root == "" {
		return types.ErrRootRequired
	}
	if len(req.Keywords) == 0 {
		return types.ErrNoKeywords
	}
	if req.CacheTTL == 0 {
		req.CacheTTL = 1 * time.Hour
	}
	return nil
}

// workerCount clamps the worker count to the file count, using the
// platform parallelism hint when no override is given. Non-positive values
// normalize to 1 rather than erroring.
func workerCount(requested, fileCount int) int {
	n := requested
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > fileCount {
		n = fileCount
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Collect lists the files a search over root with the given extension
// filter would scan, without scanning them.
func (e *Engine) Collect(root string, extensions []string) ([]string, error) {
	return e.collector.Collect(root, extensions)
}

// MaxParallelism reports the platform parallelism hint used when a request
// does not override the worker count.
func MaxParallelism() int {
	return runtime.NumCPU()
}

// CacheEntries reports the current number of cached responses.
func (e *Engine) CacheEntries() int {
	return e.cache.Len()
}
