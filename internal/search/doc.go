// Package search orchestrates parallel keyword searches over a directory
// tree.
//
// The Engine drives the full pipeline: collect files, partition them into
// contiguous chunks, dispatch one worker per chunk through the selected
// pool strategy, and merge the partial results into a single keyword ->
// file-paths mapping.
//
// # Basic Usage
//
//	engine := search.NewOS(log.New(os.Stderr, "", log.LstdFlags))
//
//	resp, err := engine.Search(ctx, search.Request{
//	    Root:            "/var/docs",
//	    Keywords:        []string{"alpha", "beta"},
//	    AllowExtensions: []string{".txt"},
//	    CaseInsensitive: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for keyword, paths := range resp.Result {
//	    fmt.Printf("%s -> %v\n", keyword, paths)
//	}
//
// # Worker Count
//
// Unless Request.Workers overrides it, the worker count is
// max(1, min(file count, runtime.NumCPU())). Each worker receives exactly
// one contiguous chunk of the file list; imbalance is bounded by chunk-size
// rounding only.
//
// # Strategies
//
// Request.Strategy selects the concurrency model: "isolated" (private
// partial results handed back over a channel) or "shared" (one mutex-guarded
// accumulator). Both yield the same (keyword, path) pair set; see package
// pool.
//
// # Caching
//
// With Request.UseCache set, responses are cached in an LRU keyed by a
// sha256 hash of the request, with a per-request TTL (default one hour).
// Cached responses report CacheHit and reflect the filesystem as of the
// original scan.
//
// # Reporting
//
// Elapsed wall-clock time and the number of files scanned are logged after
// every search; per-file read failures are logged as warnings. Neither is
// part of the returned value.
package search
