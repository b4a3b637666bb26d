package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kwscan/kwscan-mcp/internal/keywords"
	"github.com/kwscan/kwscan-mcp/internal/pool"
	"github.com/kwscan/kwscan-mcp/internal/search"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeRootNotFound  = -32001 // Root path missing or not a readable directory
	ErrorCodeEmptyKeywords = -32002 // No keywords supplied
)

// handleSearchKeywords handles the search_keywords tool invocation
func (s *Server) handleSearchKeywords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	root, ok := args["root"].(string)
	if !ok || root == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "root parameter is required", map[string]interface{}{
			"param":  "root",
			"reason": "missing or empty",
		})
	}
	if err := validatePath(root); err != nil {
		return nil, newMCPError(ErrorCodeRootNotFound, "invalid root", map[string]interface{}{
			"param":  "root",
			"reason": err.Error(),
		})
	}

	kws := getStringSlice(args, "keywords")
	if kwFile := getStringDefault(args, "keywords_file", ""); kwFile != "" && len(kws) == 0 {
		loaded, err := keywords.Load(s.fs, kwFile)
		if err != nil {
			return nil, newMCPError(ErrorCodeInvalidParams, "cannot load keywords file", map[string]interface{}{
				"param":  "keywords_file",
				"reason": err.Error(),
			})
		}
		kws = loaded
	}
	if len(kws) == 0 {
		return nil, newMCPError(ErrorCodeEmptyKeywords, "keywords or keywords_file must supply at least one keyword", map[string]interface{}{
			"param": "keywords",
		})
	}

	strategy := getStringDefault(args, "strategy", pool.StrategyShared)
	if _, err := pool.ForName(strategy); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid strategy", map[string]interface{}{
			"param":   "strategy",
			"value":   strategy,
			"allowed": []string{pool.StrategyIsolated, pool.StrategyShared},
		})
	}

	req := search.Request{
		Root:            root,
		Keywords:        kws,
		AllowExtensions: getStringSlice(args, "extensions"),
		CaseInsensitive: getBoolDefault(args, "case_insensitive", false),
		Strategy:        strategy,
		Workers:         getIntDefault(args, "workers", 0),
		UseCache:        getBoolDefault(args, "use_cache", false),
	}

	resp, err := s.engine.Search(ctx, req)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"results":       resp.Result,
		"files_scanned": resp.FilesScanned,
		"workers":       resp.Workers,
		"strategy":      resp.Strategy,
		"duration_ms":   resp.Duration.Milliseconds(),
		"cache_hit":     resp.CacheHit,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleCollectFiles handles the collect_files tool invocation
func (s *Server) handleCollectFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	root, ok := args["root"].(string)
	if !ok || root == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "root parameter is required", map[string]interface{}{
			"param":  "root",
			"reason": "missing or empty",
		})
	}
	if err := validatePath(root); err != nil {
		return nil, newMCPError(ErrorCodeRootNotFound, "invalid root", map[string]interface{}{
			"param":  "root",
			"reason": err.Error(),
		})
	}

	files, err := s.engine.Collect(root, getStringSlice(args, "extensions"))
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "collection failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"files": files,
		"count": len(files),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response := map[string]interface{}{
		"version":         ServerVersion,
		"max_parallelism": search.MaxParallelism(),
		"strategies":      []string{pool.StrategyIsolated, pool.StrategyShared},
		"cache_entries":   s.engine.CacheEntries(),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// validatePath checks if a path is an existing, readable directory
func validatePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}
	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}
	if !info.IsDir() {
		return ErrNotDirectory
	}

	f, err := os.Open(path)
	if err != nil {
		return ErrPathNotReadable
	}
	_ = f.Close()

	return nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getStringSlice extracts a string array parameter, tolerating both
// []interface{} (decoded JSON) and []string values
func getStringSlice(args map[string]interface{}, key string) []string {
	switch val := args[key].(type) {
	case []string:
		return val
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, v := range val {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrNotDirectory    = errors.New("path is not a directory")
)
