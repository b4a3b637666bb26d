// Package collector discovers the files a search will scan.
//
// Collection is recursive from a root directory and optionally filtered by
// file extension. The search engine treats the returned slice as the full
// work set: it is partitioned across workers exactly once, so collection
// order determines chunk assignment.
//
//	c := collector.New(osfs.New("/"))
//	files, err := c.Collect("/var/docs", []string{".txt", ".md"})
//
// The filesystem is abstracted behind billy.Filesystem so tests can run
// against an in-memory filesystem.
package collector
