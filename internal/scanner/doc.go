// Package scanner performs the per-file substring match at the heart of a
// keyword search.
//
// A Scanner is built once per search with the keyword set and case mode,
// then applied to each file in a worker's chunk:
//
//	sc := scanner.New(fsys, []string{"alpha", "beta"}, true, logger)
//	for _, path := range chunk {
//	    for _, kw := range sc.Scan(path) {
//	        partial.Add(kw, path)
//	    }
//	}
//
// Matching is plain substring containment; there is no regex or token
// awareness. Position and occurrence count are irrelevant: a keyword either
// appears in the file or it does not.
//
// # Error handling
//
// Read failures and non-UTF-8 content are never fatal. The offending file is
// skipped with one warning line on the operator log stream and the scan
// continues with the rest of the chunk.
package scanner
