package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/designkit/designsearch-mcp/internal/corpus"
	"github.com/designkit/designsearch-mcp/internal/index"
	"github.com/designkit/designsearch-mcp/internal/registry"
	"github.com/designkit/designsearch-mcp/internal/searcher"
)

func benchSearcher(b *testing.B) *searcher.Searcher {
	b.Helper()

	wd, err := os.Getwd()
	if err != nil {
		b.Fatal(err)
	}
	fixturesDir := filepath.Join(filepath.Dir(wd), "testdata", "fixtures")

	reg := registry.New(corpus.NewCSVLoader(fixturesDir), index.DefaultParams())
	return searcher.NewSearcher(reg, 0)
}

func BenchmarkSearchAllCategories(b *testing.B) {
	s := benchSearcher(b)
	ctx := context.Background()

	// Warm the indices outside the timed loop.
	if _, err := s.Search(ctx, searcher.SearchRequest{Query: "dashboard"}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Search(ctx, searcher.SearchRequest{Query: "dashboard analytics"}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearchCached(b *testing.B) {
	s := benchSearcher(b)
	ctx := context.Background()
	req := searcher.SearchRequest{Query: "dashboard analytics", UseCache: true}

	if _, err := s.Search(ctx, req); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Search(ctx, req); err != nil {
			b.Fatal(err)
		}
	}
}
