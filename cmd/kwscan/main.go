package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/kwscan/kwscan-mcp/internal/keywords"
	"github.com/kwscan/kwscan-mcp/internal/mcp"
	"github.com/kwscan/kwscan-mcp/internal/search"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version":
			fmt.Printf("kwscan MCP Server\n")
			fmt.Printf("Version: %s\n", version)
			fmt.Printf("Build Time: %s\n", buildTime)
			fmt.Printf("Max Parallelism: %d\n", search.MaxParallelism())
			os.Exit(0)
		case "search":
			os.Exit(runSearch(os.Args[2:]))
		}
	}

	// Log startup info to stderr (stdout reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	logger := log.New(os.Stderr, "", log.LstdFlags)
	log.Printf("kwscan MCP Server v%s starting...", version)

	server := mcp.NewServer(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Println("MCP server ready, listening on stdio...")
		errChan <- server.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down gracefully...", sig)
		cancel()
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}

	log.Println("Server stopped")
}

// runSearch executes a one-shot search from the command line and prints the
// result map to stdout.
func runSearch(args []string) int {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	root := fs.String("root", ".", "directory to scan recursively")
	kwFile := fs.String("keywords", "", "newline-delimited keyword file (required)")
	exts := fs.String("ext", "", "comma-separated extension filter, e.g. .txt,.md")
	insensitive := fs.Bool("i", false, "case-insensitive matching")
	strategy := fs.String("strategy", envDefault("KWSCAN_STRATEGY", ""), "worker strategy: isolated or shared")
	workers := fs.Int("workers", envIntDefault("KWSCAN_WORKERS", 0), "worker count override (0 = auto)")
	_ = fs.Parse(args)

	logger := log.New(os.Stderr, "", log.LstdFlags)

	if *kwFile == "" {
		logger.Println("search: -keywords FILE is required")
		return 2
	}

	fsys := osfs.New("/")
	absRoot, err := filepath.Abs(*root)
	if err != nil {
		logger.Printf("search: resolve root: %v", err)
		return 1
	}
	absKw, err := filepath.Abs(*kwFile)
	if err != nil {
		logger.Printf("search: resolve keywords file: %v", err)
		return 1
	}

	kws, err := keywords.Load(fsys, absKw)
	if err != nil {
		logger.Printf("search: %v", err)
		return 1
	}

	var allowed []string
	if *exts != "" {
		allowed = strings.Split(*exts, ",")
	}

	engine := search.New(fsys, logger)
	resp, err := engine.Search(context.Background(), search.Request{
		Root:            absRoot,
		Keywords:        kws,
		AllowExtensions: allowed,
		CaseInsensitive: *insensitive,
		Strategy:        *strategy,
		Workers:         *workers,
	})
	if err != nil {
		logger.Printf("search: %v", err)
		return 1
	}

	// Stable output for humans: keywords sorted, paths in result order.
	sorted := make([]string, 0, len(resp.Result))
	for kw := range resp.Result {
		sorted = append(sorted, kw)
	}
	sort.Strings(sorted)
	for _, kw := range sorted {
		fmt.Printf("%s:\n", kw)
		for _, path := range resp.Result[kw] {
			fmt.Printf("  %s\n", path)
		}
	}
	fmt.Printf("\n%d files scanned in %s (%d workers, %s strategy)\n",
		resp.FilesScanned, resp.Duration, resp.Workers, resp.Strategy)
	return 0
}

func envDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
