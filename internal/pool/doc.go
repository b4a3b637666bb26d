// Package pool distributes file chunks across concurrent scan workers.
//
// Two execution strategies implement the same contract and produce the same
// set of (keyword, path) pairs for the same input; they differ only in how
// partial results reach the caller.
//
// # Isolated strategy
//
// Each worker owns a private partial result and scans with no coordination.
// When a worker finishes, its partial travels back over a buffered channel
// and the caller merges partials in completion order. Nothing mutable is
// shared while scanning, so the strategy is race-free by construction.
//
//	strat, _ := pool.ForName(pool.StrategyIsolated)
//	result, err := strat.Run(ctx, sc, chunks)
//
// # Shared strategy
//
// All workers append into one accumulator guarded by a mutex held only for
// a single append at a time (never across a file scan). Workers are joined
// through an errgroup; "aggregation" is a no-op hand-off of the shared map.
//
// # Ordering
//
// For both strategies the path order within one worker's contribution to a
// keyword follows the chunk's file order, while the interleaving of whole
// worker contributions depends on completion timing and is deliberately not
// deterministic. Callers needing stable comparisons should compare the pair
// set (types.Result.Pairs).
//
// There is no work-stealing and no retry: each chunk belongs to exactly one
// worker, and a chunk skewed with large files simply finishes last.
// Cancellation of the supplied context unblocks Run; workers themselves run
// their current file to completion.
package pool
