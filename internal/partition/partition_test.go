package partition

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(n int) []string {
	files := make([]string, n)
	for i := range files {
		files[i] = fmt.Sprintf("file%03d.txt", i)
	}
	return files
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		files     int
		n         int
		wantSizes []int
	}{
		{"even split", 6, 3, []int{2, 2, 2}},
		{"uneven split last smaller", 7, 3, []int{3, 3, 1}},
		{"single chunk", 5, 1, []int{5}},
		{"more workers than files", 3, 10, []int{1, 1, 1}},
		{"one file", 1, 4, []int{1}},
		{"zero workers treated as one", 4, 0, []int{4}},
		{"negative workers treated as one", 4, -2, []int{4}},
		{"rounding drops empty tail", 4, 3, []int{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := names(tt.files)
			chunks := Split(files, tt.n)

			require.Len(t, chunks, len(tt.wantSizes))
			for i, chunk := range chunks {
				assert.Len(t, chunk, tt.wantSizes[i], "chunk %d", i)
			}

			// Union covers the input exactly once, in order.
			var flat []string
			for _, chunk := range chunks {
				flat = append(flat, chunk...)
			}
			assert.Equal(t, files, flat)
		})
	}
}

func TestSplit_Empty(t *testing.T) {
	assert.Nil(t, Split(nil, 4))
	assert.Nil(t, Split([]string{}, 0))
}

func TestSplit_NoEmptyChunks(t *testing.T) {
	for files := 1; files <= 20; files++ {
		for n := -1; n <= 25; n++ {
			for _, chunk := range Split(names(files), n) {
				require.NotEmpty(t, chunk, "files=%d n=%d", files, n)
			}
		}
	}
}
