package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/designkit/designsearch-mcp/pkg/types"
)

// searchDesignTool returns the tool definition for search_design
func searchDesignTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_design",
		Description: "Search the design database with a keyword query, across all categories or within one",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query (keywords describing the product, style or pattern)",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Restrict the search to one category; omit to search all categories",
					"enum":        types.CategoryNames(),
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-100)",
					"default":     10,
					"minimum":     1,
					"maximum":     100,
				},
				"use_cache": map[string]interface{}{
					"type":        "boolean",
					"description": "If false, bypass the query cache for this request",
					"default":     true,
				},
			},
			Required: []string{"query"},
		},
	}
}

// generateDesignSystemTool returns the tool definition for generate_design_system
func generateDesignSystemTool() mcp.Tool {
	return mcp.Tool{
		Name:        "generate_design_system",
		Description: "Generate a complete design-system recommendation document for a product described by the query",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Description of the product to design (e.g. 'analytics dashboard for finance teams')",
				},
				"project_name": map[string]interface{}{
					"type":        "string",
					"description": "Project name echoed into the generated document",
					"default":     "Untitled Project",
				},
			},
			Required: []string{"query"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report per-category index statistics and server build information",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
