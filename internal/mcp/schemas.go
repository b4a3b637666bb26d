package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchKeywordsTool returns the tool definition for search_keywords
func searchKeywordsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_keywords",
		Description: "Search a directory tree for keyword occurrences (substring match) using parallel workers",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"root": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the directory to scan recursively",
				},
				"keywords": map[string]interface{}{
					"type":        "array",
					"description": "Keywords to search for (substring match, order preserved)",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"keywords_file": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to a newline-delimited keyword file (alternative to 'keywords')",
				},
				"extensions": map[string]interface{}{
					"type":        "array",
					"description": "Only scan files with these extensions, e.g. [\".txt\", \".md\"]; empty scans all files",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"case_insensitive": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, matching ignores letter case for content and keywords",
					"default":     false,
				},
				"strategy": map[string]interface{}{
					"type":        "string",
					"description": "Worker strategy: 'isolated' (private partial results) or 'shared' (one locked accumulator)",
					"enum":        []string{"isolated", "shared"},
					"default":     "shared",
				},
				"workers": map[string]interface{}{
					"type":        "integer",
					"description": "Worker count override; 0 uses max(1, min(file count, CPU count))",
					"default":     0,
				},
				"use_cache": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, identical requests may be served from the response cache",
					"default":     false,
				},
			},
			Required: []string{"root"},
		},
	}
}

// collectFilesTool returns the tool definition for collect_files
func collectFilesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "collect_files",
		Description: "List the files a search would scan under a root, optionally filtered by extension",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"root": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the directory to enumerate recursively",
				},
				"extensions": map[string]interface{}{
					"type":        "array",
					"description": "Only list files with these extensions; empty lists all files",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
			},
			Required: []string{"root"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report server version, available strategies, and parallelism limits",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
