package search

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwscan/kwscan-mcp/internal/pool"
	"github.com/kwscan/kwscan-mcp/pkg/types"
)

func newTestEngine(t *testing.T, files map[string][]byte) (*Engine, *bytes.Buffer) {
	t.Helper()
	fsys := memfs.New()
	for path, content := range files {
		require.NoError(t, util.WriteFile(fsys, path, content, 0o644))
	}
	var buf bytes.Buffer
	return New(fsys, log.New(&buf, "", 0)), &buf
}

func scenarioFiles() map[string][]byte {
	return map[string][]byte{
		"root/a.txt": []byte("alpha beta"),
		"root/b.txt": []byte("beta gamma"),
		"root/c.md":  []byte("alpha"),
	}
}

func TestSearch_Scenario(t *testing.T) {
	engine, _ := newTestEngine(t, scenarioFiles())

	for _, strategy := range []string{pool.StrategyIsolated, pool.StrategyShared} {
		t.Run(strategy, func(t *testing.T) {
			resp, err := engine.Search(context.Background(), Request{
				Root:            "root",
				Keywords:        []string{"alpha", "beta", "delta"},
				AllowExtensions: []string{".txt"},
				Strategy:        strategy,
			})
			require.NoError(t, err)

			want := types.Result{
				"alpha": {"root/a.txt"},
				"beta":  {"root/a.txt", "root/b.txt"},
			}
			assert.ElementsMatch(t, want.Pairs(), resp.Result.Pairs())
			assert.NotContains(t, resp.Result, "delta")
			assert.Equal(t, 2, resp.FilesScanned)
			assert.Equal(t, strategy, resp.Strategy)
			assert.False(t, resp.CacheHit)
		})
	}
}

func TestSearch_NoExtensionFilterScansAll(t *testing.T) {
	engine, _ := newTestEngine(t, scenarioFiles())

	resp, err := engine.Search(context.Background(), Request{
		Root:     "root",
		Keywords: []string{"alpha"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"root/a.txt", "root/c.md"}, resp.Result["alpha"])
	assert.Equal(t, 3, resp.FilesScanned)
}

func TestSearch_CaseToggle(t *testing.T) {
	engine, _ := newTestEngine(t, map[string][]byte{
		"root/a.txt": []byte("the foo bar"),
	})

	resp, err := engine.Search(context.Background(), Request{
		Root:     "root",
		Keywords: []string{"Foo"},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Result)

	resp, err = engine.Search(context.Background(), Request{
		Root:            "root",
		Keywords:        []string{"Foo"},
		CaseInsensitive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"root/a.txt"}, resp.Result["Foo"])
}

func TestSearch_EmptyInput(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("empty", 0o755))
	var buf bytes.Buffer
	engine := New(fsys, log.New(&buf, "", 0))

	resp, err := engine.Search(context.Background(), Request{
		Root:     "empty",
		Keywords: []string{"alpha"},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Result)
	assert.Zero(t, resp.FilesScanned)
	assert.Zero(t, resp.Workers)
	assert.Contains(t, buf.String(), "[INFO] no files found")
}

func TestSearch_UnreadableFileTolerated(t *testing.T) {
	engine, buf := newTestEngine(t, map[string][]byte{
		"root/clean.txt":  []byte("alpha beta"),
		"root/binary.txt": {0xff, 0xfe, 0x00, 0x01},
	})

	resp, err := engine.Search(context.Background(), Request{
		Root:     "root",
		Keywords: []string{"alpha"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"root/clean.txt"}, resp.Result["alpha"])
	assert.Equal(t, 2, resp.FilesScanned)
	assert.Contains(t, buf.String(), "[WARN]")
}

func TestSearch_Validation(t *testing.T) {
	engine, _ := newTestEngine(t, scenarioFiles())

	_, err := engine.Search(context.Background(), Request{Keywords: []string{"a"}})
	require.ErrorIs(t, err, types.ErrRootRequired)

	_, err = engine.Search(context.Background(), Request{Root: "root"})
	require.ErrorIs(t, err, types.ErrNoKeywords)

	_, err = engine.Search(context.Background(), Request{
		Root: "root", Keywords: []string{"a"}, Strategy: "forked",
	})
	require.ErrorIs(t, err, types.ErrUnknownStrategy)

	_, err = engine.Search(context.Background(), Request{
		Root: "does-not-exist", Keywords: []string{"a"},
	})
	require.Error(t, err)
}

func TestSearch_WorkerOverride(t *testing.T) {
	engine, _ := newTestEngine(t, scenarioFiles())

	resp, err := engine.Search(context.Background(), Request{
		Root:     "root",
		Keywords: []string{"alpha"},
		Workers:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Workers)

	// More workers than files clamps to the file count.
	resp, err = engine.Search(context.Background(), Request{
		Root:     "root",
		Keywords: []string{"alpha"},
		Workers:  50,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Workers)
}

func TestSearch_Cache(t *testing.T) {
	engine, _ := newTestEngine(t, scenarioFiles())

	req := Request{
		Root:     "root",
		Keywords: []string{"alpha", "beta"},
		UseCache: true,
		CacheTTL: time.Minute,
	}

	first, err := engine.Search(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)
	assert.Equal(t, 1, engine.CacheEntries())

	second, err := engine.Search(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.ElementsMatch(t, first.Result.Pairs(), second.Result.Pairs())

	// Mutating the served copy must not poison the cache.
	second.Result.Add("alpha", "injected")
	third, err := engine.Search(context.Background(), req)
	require.NoError(t, err)
	assert.NotContains(t, third.Result["alpha"], "injected")

	// A different request misses.
	other := req
	other.CaseInsensitive = true
	miss, err := engine.Search(context.Background(), other)
	require.NoError(t, err)
	assert.False(t, miss.CacheHit)
}

func TestSearch_CacheExpiry(t *testing.T) {
	engine, _ := newTestEngine(t, scenarioFiles())

	req := Request{
		Root:     "root",
		Keywords: []string{"alpha"},
		UseCache: true,
		CacheTTL: time.Nanosecond,
	}

	_, err := engine.Search(context.Background(), req)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	resp, err := engine.Search(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.CacheHit, "expired entry must not be served")
}

func TestWorkerCount(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		files     int
		want      int
	}{
		{"explicit within bounds", 2, 10, 2},
		{"explicit above file count", 8, 3, 3},
		{"negative normalizes to one", -5, 0, 1},
		{"zero files clamps to one", 4, 0, 1},
		{"one file one worker", 16, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, workerCount(tt.requested, tt.files))
		})
	}

	// Auto mode never exceeds the file count or the CPU count.
	auto := workerCount(0, 4)
	assert.GreaterOrEqual(t, auto, 1)
	assert.LessOrEqual(t, auto, 4)
	assert.LessOrEqual(t, auto, MaxParallelism())
}
