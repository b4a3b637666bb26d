package pool

import (
	"sync"

	"github.com/kwscan/kwscan-mcp/pkg/types"
)

// accumulator is the shared result structure of the shared strategy. The
// mutex guards individual appends only, never a whole file scan, so workers
// overlap except for the brief record step.
type accumulator struct {
	mu sync.Mutex
	m  types.Result
}

func newAccumulator() *accumulator {
	return &accumulator{m: make(types.Result)}
}

// add records one keyword match under the lock.
func (a *accumulator) add(keyword, path string) {
	a.mu.Lock()
	a.m.Add(keyword, path)
	a.mu.Unlock()
}

// result hands off the underlying map. Must only be called after all
// workers have joined.
func (a *accumulator) result() types.Result {
	return a.m
}
