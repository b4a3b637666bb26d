package pool

import (
	"context"

	"github.com/kwscan/kwscan-mcp/internal/partition"
	"github.com/kwscan/kwscan-mcp/internal/scanner"
	"github.com/kwscan/kwscan-mcp/pkg/types"
)

// Isolated runs each worker with a private partial result and hands it back
// over a channel when the worker completes. No mutable state is shared
// between workers, which rules out data races by construction at the cost
// of one result copy per worker.
type Isolated struct{}

// Name implements Strategy.
func (*Isolated) Name() string { return StrategyIsolated }

// isolatedWorker carries one chunk and its private result slot; nothing is
// captured implicitly from the dispatch loop.
type isolatedWorker struct {
	chunk   partition.Chunk
	scanner *scanner.Scanner
	out     chan<- types.Result
}

func (w *isolatedWorker) run() {
	partial := make(types.Result)
	for _, path := range w.chunk {
		for _, kw := range w.scanner.Scan(path) {
			partial.Add(kw, path)
		}
	}
	w.out <- partial
}

// Run dispatches one goroutine per chunk and merges partial results in
// completion order: first finished, first merged. Order within one worker's
// contribution is chunk order; order across workers is non-deterministic.
func (*Isolated) Run(ctx context.Context, sc *scanner.Scanner, chunks []partition.Chunk) (types.Result, error) {
	// Buffered so a finished worker never blocks on a slow merge.
	out := make(chan types.Result, len(chunks))
	for _, chunk := range chunks {
		w := &isolatedWorker{chunk: chunk, scanner: sc, out: out}
		go w.run()
	}

	final := make(types.Result)
	for range chunks {
		select {
		case partial := <-out:
			final.Merge(partial)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return final, nil
}
