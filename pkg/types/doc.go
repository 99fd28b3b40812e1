// Package types provides shared type definitions for the DesignSearch MCP server.
//
// This package defines domain types used across multiple components of
// DesignSearch, including records, categories, search results, and the
// composed design-system document.
//
// # Core Types
//
// Record is an ordered field-name to field-value mapping. Design databases
// differ in schema per category, so records are loosely typed; a missing
// field reads as the empty string, never an error:
//
//	rec := types.NewRecord()
//	rec.Set("product", "Analytics Dashboard")
//	rec.Set("anti_patterns", "carousel hero;auto-playing video")
//
//	name := rec.Get("product") // "Analytics Dashboard"
//	_ = rec.Get("missing")     // ""
//
// Category identifies one of the seven fixed design databases:
//
//	for _, cat := range types.Categories() {
//	    fmt.Println(cat) // product, style, color, typography, landing, chart, ux
//	}
//
// # Search Results
//
// SearchResult combines a record with its category and BM25 relevance score:
//
//	result := types.SearchResult{
//	    Category: types.CategoryProduct,
//	    Record:   rec,
//	    Score:    4.37,
//	    Rank:     1,
//	}
//
// Scores are raw BM25 values: always strictly positive for returned results,
// with higher values indicating better matches. They are not normalized to a
// fixed range.
//
// # Design-System Documents
//
// DesignSystem is the aggregate recommendation produced for a single query:
// a primary pick per category, alternates, derived anti-patterns, and a
// pre-delivery checklist built from UX guidelines.
//
// # Field Conventions
//
// The composer reads well-known fields by convention rather than by static
// schema: FieldAntiPatterns on product records (semicolon-delimited) and
// FieldGuidelineName, FieldRule, FieldCategory on ux records.
package types
