package composer

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/designkit/designsearch-mcp/internal/corpus"
	"github.com/designkit/designsearch-mcp/internal/searcher"
	"github.com/designkit/designsearch-mcp/pkg/types"
)

// Per-category result caps for design-system generation.
const (
	pickCap        = 3 // product, style, color, typography, landing
	chartCap       = 5
	uxCap          = 5
	antiPatternCap = 5
	checklistScan  = 10 // ux results considered for checklist entries
)

// defaultChecklistCategory is used when a ux record has no category field.
const defaultChecklistCategory = "general"

// Composer generates design-system recommendation documents.
type Composer struct {
	searcher *searcher.Searcher
}

// New creates a Composer over the given searcher.
func New(s *searcher.Searcher) *Composer {
	return &Composer{searcher: s}
}

// categoryCap returns the result cap for a category's generation search.
func categoryCap(cat types.Category) int {
	switch cat {
	case types.CategoryChart:
		return chartCap
	case types.CategoryUX:
		return uxCap
	default:
		return pickCap
	}
}

// Generate searches every category for the query and assembles the
// recommendation document. An unavailable data source drops that category's
// contribution; any other failure aborts generation.
func (c *Composer) Generate(ctx context.Context, query, projectName string) (*types.DesignSystem, error) {
	cats := types.Categories()
	resultsByCat := make([][]types.SearchResult, len(cats))

	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range cats {
		g.Go(func() error {
			resp, err := c.searcher.Search(gctx, searcher.SearchRequest{
				Query:    query,
				Category: cat,
				Limit:    categoryCap(cat),
			})
			if errors.Is(err, corpus.ErrSourceUnavailable) {
				// Multi-category semantics: lose the category, keep the doc.
				return nil
			}
			if err != nil {
				return err
			}
			resultsByCat[i] = resp.Results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCat := make(map[types.Category][]types.SearchResult, len(cats))
	for i, cat := range cats {
		byCat[cat] = resultsByCat[i]
	}

	doc := &types.DesignSystem{
		ProjectName: projectName,
		Query:       query,
		Recommendations: types.Recommendations{
			Product:        firstRecord(byCat[types.CategoryProduct]),
			Style:          firstRecord(byCat[types.CategoryStyle]),
			ColorPalette:   firstRecord(byCat[types.CategoryColor]),
			Typography:     firstRecord(byCat[types.CategoryTypography]),
			LandingPattern: firstRecord(byCat[types.CategoryLanding]),
			Charts:         recordRange(byCat[types.CategoryChart], 0, 3),
			UXGuidelines:   recordRange(byCat[types.CategoryUX], 0, 5),
		},
		Alternatives: types.Alternatives{
			Products:        recordRange(byCat[types.CategoryProduct], 1, 3),
			Styles:          recordRange(byCat[types.CategoryStyle], 1, 3),
			Colors:          recordRange(byCat[types.CategoryColor], 1, 3),
			Typography:      recordRange(byCat[types.CategoryTypography], 1, 3),
			LandingPatterns: recordRange(byCat[types.CategoryLanding], 1, 3),
		},
		AntiPatterns: extractAntiPatterns(byCat[types.CategoryProduct]),
		Checklist:    buildChecklist(byCat[types.CategoryUX]),
	}

	return doc, nil
}

// firstRecord returns the top result's record, or an empty record.
func firstRecord(results []types.SearchResult) types.Record {
	if len(results) == 0 {
		return types.NewRecord()
	}
	return results[0].Record
}

// recordRange returns the records at result positions [from, to), clamped.
func recordRange(results []types.SearchResult, from, to int) []types.Record {
	if from >= len(results) {
		return nil
	}
	if to > len(results) {
		to = len(results)
	}
	records := make([]types.Record, 0, to-from)
	for _, r := range results[from:to] {
		records = append(records, r.Record)
	}
	return records
}

// extractAntiPatterns collects anti-pattern phrases from the top-2 product
// results. Phrases are semicolon-separated on the record; duplicates are
// dropped keeping first-seen order, and the list is capped at 5.
func extractAntiPatterns(productResults []types.SearchResult) []string {
	seen := make(map[string]struct{})
	var patterns []string

	top := productResults
	if len(top) > 2 {
		top = top[:2]
	}

	for _, result := range top {
		raw := result.Record.Get(types.FieldAntiPatterns)
		if raw == "" {
			continue
		}
		for _, phrase := range strings.Split(raw, ";") {
			phrase = strings.TrimSpace(phrase)
			if phrase == "" {
				continue
			}
			if _, dup := seen[phrase]; dup {
				continue
			}
			seen[phrase] = struct{}{}
			patterns = append(patterns, phrase)
			if len(patterns) == antiPatternCap {
				return patterns
			}
		}
	}

	return patterns
}

// buildChecklist derives pre-delivery checklist entries from the top ux
// results. A result contributes only when it has both a guideline name and
// a rule; anything else is skipped silently.
func buildChecklist(uxResults []types.SearchResult) []types.ChecklistItem {
	top := uxResults
	if len(top) > checklistScan {
		top = top[:checklistScan]
	}

	var checklist []types.ChecklistItem
	for _, result := range top {
		name := result.Record.Get(types.FieldGuidelineName)
		rule := result.Record.Get(types.FieldRule)
		if name == "" || rule == "" {
			continue
		}

		category := result.Record.Get(types.FieldCategory)
		if category == "" {
			category = defaultChecklistCategory
		}

		checklist = append(checklist, types.ChecklistItem{
			Item:     name,
			Rule:     rule,
			Category: category,
		})
	}

	return checklist
}
