// Package searcher orchestrates BM25 searches across the category indices.
//
// A search tokenizes the query, fans out to the target categories (one
// filtered category, or all seven), scores every document per category, and
// merges the positive-score results into a single globally-sorted list.
// Per-category scoring runs concurrently; merging happens only after every
// category completes, so results are deterministic: descending score, with
// exact ties resolved by category order and then load order.
//
// # Usage
//
//	s := searcher.NewSearcher(reg, 1000)
//	resp, err := s.Search(ctx, searcher.SearchRequest{
//	    Query: "dark mode dashboard",
//	    Limit: 10,
//	})
//
// # Error Semantics
//
// A blank query or a query with no positive-score matches yields an empty
// result set, never an error. When a category's data source fails during an
// unfiltered search, only that category's contribution is dropped and the
// category is reported in SearchResponse.Skipped; a filtered search on the
// failing category propagates corpus.ErrSourceUnavailable instead.
//
// # Caching
//
// Responses can be cached in a bounded LRU keyed by a hash of the request.
// The corpus is immutable for the process lifetime, so cached responses are
// always identical to recomputed ones; the cache only saves the scoring
// work.
package searcher
