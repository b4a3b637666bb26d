package pool

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kwscan/kwscan-mcp/internal/partition"
	"github.com/kwscan/kwscan-mcp/internal/scanner"
	"github.com/kwscan/kwscan-mcp/pkg/types"
)

// Shared runs all workers against one accumulator guarded by a mutex. The
// lock is scoped to a single append, so scanning is fully concurrent and
// only the record step serializes.
type Shared struct{}

// Name implements Strategy.
func (*Shared) Name() string { return StrategyShared }

// sharedWorker carries one chunk and a reference to the orchestrator-owned
// accumulator.
type sharedWorker struct {
	chunk   partition.Chunk
	scanner *scanner.Scanner
	acc     *accumulator
}

func (w *sharedWorker) run(ctx context.Context) error {
	for _, path := range w.chunk {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		for _, kw := range w.scanner.Scan(path) {
			w.acc.add(kw, path)
		}
	}
	return nil
}

// Run fans out one goroutine per chunk via errgroup and joins them all
// before handing back the accumulator's map.
func (*Shared) Run(ctx context.Context, sc *scanner.Scanner, chunks []partition.Chunk) (types.Result, error) {
	acc := newAccumulator()

	g, gctx := errgroup.WithContext(ctx)
	for _, chunk := range chunks {
		w := &sharedWorker{chunk: chunk, scanner: sc, acc: acc}
		g.Go(func() error { return w.run(gctx) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return acc.result(), nil
}
