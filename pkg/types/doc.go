// Package types provides shared type definitions for the kwscan MCP server.
//
// The central type is Result, the keyword -> file-path mapping every search
// produces:
//
//	result := types.Result{}
//	result.Add("alpha", "docs/a.txt")
//	result.Add("alpha", "docs/b.txt")
//
//	for keyword, paths := range result {
//	    fmt.Printf("%s: %v\n", keyword, paths)
//	}
//
// # Merging
//
// Workers build partial Results independently; the orchestrator merges them
// with Merge, which concatenates the per-keyword path lists:
//
//	final := types.Result{}
//	for partial := range completed {
//	    final.Merge(partial)
//	}
//
// Order within one partial's list is preserved; order across partials follows
// the order in which Merge is called (worker completion order, which is not
// deterministic).
//
// # Comparison
//
// Because cross-worker order varies run to run, tests compare results as sets
// of (keyword, path) pairs:
//
//	assert.ElementsMatch(t, want.Pairs(), got.Pairs())
package types
