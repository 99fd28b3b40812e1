package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/designkit/designsearch-mcp/internal/corpus"
	"github.com/designkit/designsearch-mcp/internal/searcher"
	"github.com/designkit/designsearch-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams     = -32602 // Invalid method parameters
	ErrorCodeInternalError     = -32603 // Internal JSON-RPC error
	ErrorCodeSourceUnavailable = -32001 // Design data source unreadable or corrupt
	ErrorCodeEmptyQuery        = -32002 // Query parameter is empty
)

// handleSearchDesign handles the search_design tool invocation
func (s *Server) handleSearchDesign(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	category := getStringDefault(args, "category", "")
	if category != "" && !types.Category(category).Valid() {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid category", map[string]interface{}{
			"param":   "category",
			"value":   category,
			"allowed": types.CategoryNames(),
		})
	}

	limit := getIntDefault(args, "limit", searcher.DefaultLimit)
	if limit < 1 || limit > searcher.MaxLimit {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	useCache := getBoolDefault(args, "use_cache", true)

	response, err := s.searcher.Search(ctx, searcher.SearchRequest{
		Query:    query,
		Category: types.Category(category),
		Limit:    limit,
		UseCache: useCache,
	})
	if err != nil {
		if errors.Is(err, corpus.ErrSourceUnavailable) {
			return nil, newMCPError(ErrorCodeSourceUnavailable, "design data source unavailable", map[string]interface{}{
				"category": category,
				"error":    err.Error(),
			})
		}
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.log.Debug("search_design completed",
		zap.String("query", query),
		zap.String("category", category),
		zap.Int("results", response.TotalResults),
		zap.Bool("cache_hit", response.CacheHit))

	results := make([]interface{}, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, map[string]interface{}{
			"category": string(r.Category),
			"rank":     r.Rank,
			"score":    r.Score,
			"record":   recordJSON(r.Record),
		})
	}

	categoryLabel := category
	if categoryLabel == "" {
		categoryLabel = "all"
	}

	out := map[string]interface{}{
		"query":         query,
		"category":      categoryLabel,
		"total_results": response.TotalResults,
		"duration_ms":   response.Duration.Milliseconds(),
		"cache_hit":     response.CacheHit,
		"results":       results,
	}
	if len(response.Skipped) > 0 {
		skipped := make([]string, 0, len(response.Skipped))
		for _, cat := range response.Skipped {
			skipped = append(skipped, string(cat))
		}
		out["skipped_categories"] = skipped
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

// handleGenerateDesignSystem handles the generate_design_system tool invocation
func (s *Server) handleGenerateDesignSystem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	projectName := getStringDefault(args, "project_name", "Untitled Project")

	doc, err := s.composer.Generate(ctx, query, projectName)
	if err != nil {
		if errors.Is(err, corpus.ErrSourceUnavailable) {
			return nil, newMCPError(ErrorCodeSourceUnavailable, "design data source unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, newMCPError(ErrorCodeInternalError, "design system generation failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.log.Debug("generate_design_system completed",
		zap.String("query", query),
		zap.String("project", projectName),
		zap.Int("anti_patterns", len(doc.AntiPatterns)),
		zap.Int("checklist", len(doc.Checklist)))

	checklist := make([]interface{}, 0, len(doc.Checklist))
	for _, item := range doc.Checklist {
		checklist = append(checklist, map[string]interface{}{
			"item":     item.Item,
			"rule":     item.Rule,
			"category": item.Category,
		})
	}

	out := map[string]interface{}{
		"project_name": doc.ProjectName,
		"query":        doc.Query,
		"recommendations": map[string]interface{}{
			"product":         recordJSON(doc.Recommendations.Product),
			"style":           recordJSON(doc.Recommendations.Style),
			"color_palette":   recordJSON(doc.Recommendations.ColorPalette),
			"typography":      recordJSON(doc.Recommendations.Typography),
			"landing_pattern": recordJSON(doc.Recommendations.LandingPattern),
			"charts":          recordsJSON(doc.Recommendations.Charts),
			"ux_guidelines":   recordsJSON(doc.Recommendations.UXGuidelines),
		},
		"alternatives": map[string]interface{}{
			"products":         recordsJSON(doc.Alternatives.Products),
			"styles":           recordsJSON(doc.Alternatives.Styles),
			"colors":           recordsJSON(doc.Alternatives.Colors),
			"typography":       recordsJSON(doc.Alternatives.Typography),
			"landing_patterns": recordsJSON(doc.Alternatives.LandingPatterns),
		},
		"anti_patterns": doc.AntiPatterns,
		"checklist":     checklist,
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories := make([]interface{}, 0, len(types.Categories()))
	for _, status := range s.registry.Status() {
		categories = append(categories, map[string]interface{}{
			"category":       string(status.Category),
			"built":          status.Built,
			"documents":      status.Documents,
			"vocab_size":     status.VocabSize,
			"avg_doc_length": status.AvgDocLen,
		})
	}

	out := map[string]interface{}{
		"server": map[string]interface{}{
			"name":          ServerName,
			"version":       ServerVersion,
			"build_mode":    corpus.BuildMode,
			"sqlite_driver": corpus.DriverName,
		},
		"categories": categories,
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

// Helper functions

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

// recordJSON converts a record to a JSON-serializable map in field order.
func recordJSON(rec types.Record) map[string]interface{} {
	out := make(map[string]interface{}, rec.Len())
	for k, v := range rec.Map() {
		out[k] = v
	}
	return out
}

// recordsJSON converts a record slice, preserving order.
func recordsJSON(recs []types.Record) []interface{} {
	out := make([]interface{}, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recordJSON(rec))
	}
	return out
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
