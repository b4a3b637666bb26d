// Package mcp exposes the keyword search engine over the Model Context
// Protocol (stdio transport).
//
// Three tools are registered:
//   - search_keywords: run a parallel keyword search under a root directory
//   - collect_files: preview the file set a search would scan
//   - get_status: server version, strategies, and parallelism limits
//
// Tool handlers validate parameters and translate failures into MCPError
// values carrying JSON-RPC style negative codes. Results are returned as
// indented JSON text. All logging goes to stderr; stdout belongs to the
// protocol.
package mcp
