package types

// Result maps a keyword to the list of file paths that contain it.
// Keywords with zero matches are absent; a Result never holds an empty list.
type Result map[string][]string

// Match is a single (keyword, path) pair, useful for order-insensitive
// comparison of results.
type Match struct {
	Keyword string
	Path    string
}

// Add records a match. Paths accumulate in append order.
func (r Result) Add(keyword, path string) {
	r[keyword] = append(r[keyword], path)
}

// Merge extends r with every entry of partial, preserving the partial's
// append order. Entries for keywords already present are concatenated.
func (r Result) Merge(partial Result) {
	for keyword, paths := range partial {
		r[keyword] = append(r[keyword], paths...)
	}
}

// Pairs flattens the result into (keyword, path) pairs. Pair order follows
// map iteration and is not stable.
func (r Result) Pairs() []Match {
	pairs := make([]Match, 0, r.TotalMatches())
	for keyword, paths := range r {
		for _, path := range paths {
			pairs = append(pairs, Match{Keyword: keyword, Path: path})
		}
	}
	return pairs
}

// TotalMatches counts all (keyword, path) pairs.
func (r Result) TotalMatches() int {
	n := 0
	for _, paths := range r {
		n += len(paths)
	}
	return n
}

// Clone returns a deep copy of the result.
func (r Result) Clone() Result {
	if r == nil {
		return nil
	}
	dst := make(Result, len(r))
	for keyword, paths := range r {
		cp := make([]string, len(paths))
		copy(cp, paths)
		dst[keyword] = cp
	}
	return dst
}
