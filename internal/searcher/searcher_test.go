package searcher

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designkit/designsearch-mcp/internal/corpus"
	"github.com/designkit/designsearch-mcp/internal/index"
	"github.com/designkit/designsearch-mcp/internal/registry"
	"github.com/designkit/designsearch-mcp/pkg/types"
)

// memLoader serves an in-memory corpus and can fail selected categories.
type memLoader struct {
	records map[types.Category][]types.Record
	errs    map[types.Category]error
}

func (l *memLoader) Load(_ context.Context, cat types.Category) ([]types.Record, error) {
	if err := l.errs[cat]; err != nil {
		return nil, err
	}
	return l.records[cat], nil
}

func record(pairs ...string) types.Record {
	rec := types.NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		rec.Set(pairs[i], pairs[i+1])
	}
	return rec
}

// setupTestSearcher builds a searcher over a small in-memory design corpus.
func setupTestSearcher(t *testing.T) *Searcher {
	t.Helper()

	loader := &memLoader{
		records: map[types.Category][]types.Record{
			types.CategoryProduct: {
				record("product", "E-commerce Store", "keywords", "checkout cart"),
				record("product", "Portfolio Site", "keywords", "minimalist personal"),
				record("product", "Admin Panel", "keywords", "tables forms"),
			},
			types.CategoryStyle: {
				record("style", "Minimalism", "keywords", "minimalist whitespace clean"),
				record("style", "Brutalism", "keywords", "raw bold concrete"),
			},
			types.CategoryChart: {
				record("chart", "Line Chart", "use_case", "trends over time"),
			},
		},
		errs: map[types.Category]error{},
	}

	return NewSearcher(registry.New(loader, index.DefaultParams()), 0)
}

func TestSearchSingleCategory(t *testing.T) {
	s := setupTestSearcher(t)

	resp, err := s.Search(context.Background(), SearchRequest{
		Query:    "minimalist",
		Category: types.CategoryProduct,
	})
	require.NoError(t, err)

	// Only record #1 of the product corpus contains the term.
	require.Len(t, resp.Results, 1)
	assert.Equal(t, types.CategoryProduct, resp.Results[0].Category)
	assert.Equal(t, "Portfolio Site", resp.Results[0].Record.Get("product"))
	assert.Greater(t, resp.Results[0].Score, 0.0)
	assert.Equal(t, 1, resp.Results[0].Rank)
}

func TestSearchAllCategories(t *testing.T) {
	s := setupTestSearcher(t)

	resp, err := s.Search(context.Background(), SearchRequest{Query: "minimalist"})
	require.NoError(t, err)

	// One product and one style record match.
	require.Len(t, resp.Results, 2)
	for i, result := range resp.Results {
		assert.Greater(t, result.Score, 0.0)
		assert.Equal(t, i+1, result.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, resp.Results[i-1].Score, result.Score)
		}
	}
	assert.Empty(t, resp.Skipped)
}

func TestSearchSortedDescending(t *testing.T) {
	s := setupTestSearcher(t)

	resp, err := s.Search(context.Background(), SearchRequest{Query: "minimalist whitespace clean"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Results)

	// The style record matches all three terms and must rank first.
	assert.Equal(t, "Minimalism", resp.Results[0].Record.Get("style"))
	for i := 1; i < len(resp.Results); i++ {
		assert.GreaterOrEqual(t, resp.Results[i-1].Score, resp.Results[i].Score)
	}
}

func TestSearchLimit(t *testing.T) {
	loader := &memLoader{records: map[types.Category][]types.Record{}, errs: map[types.Category]error{}}
	for i := 0; i < 30; i++ {
		loader.records[types.CategoryUX] = append(loader.records[types.CategoryUX],
			record("guideline_name", fmt.Sprintf("rule %d about contrast", i)))
	}
	s := NewSearcher(registry.New(loader, index.DefaultParams()), 0)

	resp, err := s.Search(context.Background(), SearchRequest{Query: "contrast", Limit: 5})
	require.NoError(t, err)
	assert.Len(t, resp.Results, 5)
	assert.Equal(t, 5, resp.TotalResults)

	// Default and max limits apply when unset or oversized.
	resp, err = s.Search(context.Background(), SearchRequest{Query: "contrast"})
	require.NoError(t, err)
	assert.Len(t, resp.Results, DefaultLimit)

	resp, err = s.Search(context.Background(), SearchRequest{Query: "contrast", Limit: 10000})
	require.NoError(t, err)
	assert.Len(t, resp.Results, 30)
}

func TestSearchBlankQuery(t *testing.T) {
	s := setupTestSearcher(t)

	for _, query := range []string{"", "   ", "\t\n"} {
		resp, err := s.Search(context.Background(), SearchRequest{Query: query})
		require.NoError(t, err)
		assert.Empty(t, resp.Results)
	}
}

func TestSearchNoMatches(t *testing.T) {
	s := setupTestSearcher(t)

	resp, err := s.Search(context.Background(), SearchRequest{Query: "zeppelin"})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Zero(t, resp.TotalResults)
}

func TestSearchInvalidCategory(t *testing.T) {
	s := setupTestSearcher(t)

	_, err := s.Search(context.Background(), SearchRequest{Query: "minimalist", Category: "widgets"})
	assert.ErrorIs(t, err, types.ErrInvalidCategory)
}

func TestSearchEmptyCategoriesSkippedSilently(t *testing.T) {
	s := setupTestSearcher(t)

	// color, typography, landing and ux have no data at all.
	resp, err := s.Search(context.Background(), SearchRequest{Query: "minimalist"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Results)
	assert.Empty(t, resp.Skipped)

	resp, err = s.Search(context.Background(), SearchRequest{Query: "minimalist", Category: types.CategoryColor})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

func TestSearchTieOrderDeterministic(t *testing.T) {
	// Identical single-record corpora in two categories produce identical
	// scores; the tie must resolve in category order, repeatably.
	loader := &memLoader{
		records: map[types.Category][]types.Record{
			types.CategoryProduct: {record("name", "dashboard")},
			types.CategoryStyle:   {record("name", "dashboard")},
		},
		errs: map[types.Category]error{},
	}
	s := NewSearcher(registry.New(loader, index.DefaultParams()), 0)

	for i := 0; i < 20; i++ {
		resp, err := s.Search(context.Background(), SearchRequest{Query: "dashboard"})
		require.NoError(t, err)
		require.Len(t, resp.Results, 2)
		assert.Equal(t, resp.Results[0].Score, resp.Results[1].Score)
		assert.Equal(t, types.CategoryProduct, resp.Results[0].Category)
		assert.Equal(t, types.CategoryStyle, resp.Results[1].Category)
	}
}

func TestSearchTieLoadOrderWithinCategory(t *testing.T) {
	loader := &memLoader{
		records: map[types.Category][]types.Record{
			types.CategoryChart: {
				record("chart", "heatmap", "position", "first"),
				record("chart", "heatmap", "position", "second"),
			},
		},
		errs: map[types.Category]error{},
	}
	s := NewSearcher(registry.New(loader, index.DefaultParams()), 0)

	resp, err := s.Search(context.Background(), SearchRequest{Query: "heatmap"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "first", resp.Results[0].Record.Get("position"))
	assert.Equal(t, "second", resp.Results[1].Record.Get("position"))
}

func TestSearchSourceFailureUnfiltered(t *testing.T) {
	loader := &memLoader{
		records: map[types.Category][]types.Record{
			types.CategoryProduct: {record("product", "minimalist shop")},
		},
		errs: map[types.Category]error{
			types.CategoryStyle: fmt.Errorf("%w: corrupt file", corpus.ErrSourceUnavailable),
		},
	}
	s := NewSearcher(registry.New(loader, index.DefaultParams()), 0)

	// Unfiltered: the failing category is dropped, not fatal.
	resp, err := s.Search(context.Background(), SearchRequest{Query: "minimalist"})
	require.NoError(t, err)
	assert.Len(t, resp.Results, 1)
	assert.Equal(t, []types.Category{types.CategoryStyle}, resp.Skipped)

	// Filtered on the failing category: the error propagates.
	_, err = s.Search(context.Background(), SearchRequest{Query: "minimalist", Category: types.CategoryStyle})
	assert.ErrorIs(t, err, corpus.ErrSourceUnavailable)
}

func TestSearchIdempotent(t *testing.T) {
	s := setupTestSearcher(t)
	req := SearchRequest{Query: "minimalist checkout"}

	first, err := s.Search(context.Background(), req)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := s.Search(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, first.Results, again.Results)
	}
}

func TestSearchCache(t *testing.T) {
	s := setupTestSearcher(t)
	req := SearchRequest{Query: "minimalist", UseCache: true}

	first, err := s.Search(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := s.Search(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Results, second.Results)

	// Mutating a returned slice must not poison the cache.
	second.Results[0].Score = -1
	third, err := s.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.Results, third.Results)

	s.InvalidateCache()
	fourth, err := s.Search(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, fourth.CacheHit)
}
