// Package mcp implements the Model Context Protocol (MCP) server for DesignSearch.
//
// The MCP server exposes three tools to AI assistants:
//   - search_design: Rank design records against a keyword query
//   - generate_design_system: Compose a full design-system recommendation document
//   - get_status: Report per-category index statistics and build information
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server communicates with MCP clients via standard input/output,
// making it simple to integrate with any MCP-compatible client.
//
// # Tool: search_design
//
// Search the design database:
//
//	Request:
//	{
//	  "name": "search_design",
//	  "arguments": {
//	    "query": "minimalist dashboard",
//	    "category": "style",
//	    "limit": 10
//	  }
//	}
//
//	Response:
//	{
//	  "query": "minimalist dashboard",
//	  "category": "style",
//	  "total_results": 2,
//	  "results": [
//	    {
//	      "category": "style",
//	      "rank": 1,
//	      "score": 3.41,
//	      "record": {"style": "Minimalism", "keywords": "clean whitespace"}
//	    }
//	  ]
//	}
//
// Omitting "category" searches every category and merges the ranked results.
// Categories whose data source failed during an unfiltered search are listed
// under "skipped_categories" instead of failing the call.
//
// # Tool: generate_design_system
//
// Compose a recommendation document from the top matches of every category:
//
//	Request:
//	{
//	  "name": "generate_design_system",
//	  "arguments": {
//	    "query": "analytics dashboard for finance teams",
//	    "project_name": "LedgerView"
//	  }
//	}
//
// The response carries primary recommendations, ranked alternatives,
// aggregated anti-patterns and a UX checklist.
//
// # Tool: get_status
//
// Report index state without triggering builds:
//
//	Response:
//	{
//	  "server": {"name": "designsearch-mcp", "build_mode": "purego"},
//	  "categories": [
//	    {"category": "product", "built": true, "documents": 48, "vocab_size": 312}
//	  ]
//	}
//
// # Error Handling
//
// The MCP server returns standard JSON-RPC error responses:
//
//	{
//	  "error": {
//	    "code": -32602,
//	    "message": "Invalid params",
//	    "data": {"param": "category", "value": "fonts"}
//	  }
//	}
//
// Error codes:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error
//   - -32001: Design data source unavailable (unreadable or corrupt)
//   - -32002: Empty query
//
// # Logging
//
// The MCP server logs to stderr (stdout is reserved for MCP protocol).
// Set the level in the config file:
//
//	logging:
//	  level: debug
package mcp
