// Package partition splits an ordered file list into contiguous chunks.
package partition

// Chunk is a contiguous slice of the file list assigned to one worker.
type Chunk []string

// Split carves files into at most n contiguous chunks of near-equal size
// (ceil(len/n) each, the last one possibly smaller). Chunks preserve the
// original order, never overlap, and together cover files exactly once.
// Empty chunks produced by size rounding are dropped. n below 1 is treated
// as 1. An empty input yields no chunks.
func Split(files []string, n int) []Chunk {
	if len(files) == 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}

	size := (len(files) + n - 1) / n
	chunks := make([]Chunk, 0, n)
	for i := 0; i < len(files); i += size {
		end := i + size
		if end > len(files) {
			end = len(files)
		}
		chunks = append(chunks, Chunk(files[i:end]))
	}
	return chunks
}
