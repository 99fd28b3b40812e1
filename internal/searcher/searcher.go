package searcher

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/designkit/designsearch-mcp/internal/registry"
	"github.com/designkit/designsearch-mcp/internal/tokenizer"
	"github.com/designkit/designsearch-mcp/pkg/types"
)

const (
	// DefaultLimit is the result cap applied when a request does not set one.
	DefaultLimit = 10
	// MaxLimit bounds the result cap of any single request.
	MaxLimit = 100
	// DefaultCacheSize is the LRU entry limit used when none is configured.
	DefaultCacheSize = 1000
	// defaultCacheTTL bounds how long a cached response is served.
	defaultCacheTTL = 1 * time.Hour
)

// SearchRequest contains parameters for a search operation
type SearchRequest struct {
	Query    string
	Category types.Category // empty searches all categories
	Limit    int
	UseCache bool // Whether to use the query cache
	CacheTTL time.Duration
}

// SearchResponse contains search results and metadata
type SearchResponse struct {
	Results      []types.SearchResult
	TotalResults int
	Duration     time.Duration
	CacheHit     bool

	// Skipped lists categories whose data source failed during an
	// unfiltered search. Their contributions are absent from Results.
	Skipped []types.Category
}

// cacheEntry represents a cached search response with expiration time
type cacheEntry struct {
	response  *SearchResponse
	expiresAt time.Time
}

// Searcher coordinates query fan-out across the category indices.
type Searcher struct {
	registry *registry.Registry
	cache    *lru.Cache[[32]byte, *cacheEntry]
	cacheMu  sync.RWMutex
}

// NewSearcher creates a Searcher over the given registry. cacheSize bounds
// the query cache; values <= 0 use DefaultCacheSize.
func NewSearcher(reg *registry.Registry, cacheSize int) *Searcher {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[[32]byte, *cacheEntry](cacheSize)
	if err != nil {
		// Only reachable with an invalid size, which we just normalized.
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}

	return &Searcher{
		registry: reg,
		cache:    cache,
	}
}

// categoryHits holds one category's positive-score matches in load order.
type categoryHits struct {
	category types.Category
	results  []types.SearchResult
	err      error
}

// Search runs the query against the target categories and returns the
// merged, globally-sorted, truncated result list.
func (s *Searcher) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	startTime := time.Now()

	if err := s.validateRequest(&req); err != nil {
		return nil, fmt.Errorf("invalid search request: %w", err)
	}

	queryTokens := tokenizer.Tokenize(req.Query)
	if len(queryTokens) == 0 {
		// A blank query matches nothing; not an error.
		return &SearchResponse{Duration: time.Since(startTime)}, nil
	}

	if req.UseCache {
		if cached := s.checkCache(req); cached != nil {
			cached.CacheHit = true
			cached.Duration = time.Since(startTime)
			return cached, nil
		}
	}

	targets := types.Categories()
	if req.Category != "" {
		targets = []types.Category{req.Category}
	}

	// Fan out one goroutine per target category. Each writes only its own
	// slot, and merging waits for the full join, so the merge input is
	// deterministic regardless of completion order.
	hits := make([]categoryHits, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range targets {
		g.Go(func() error {
			hits[i] = s.searchCategory(gctx, cat, queryTokens)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	response := &SearchResponse{}
	var pool []types.SearchResult
	for _, h := range hits {
		if h.err != nil {
			if req.Category != "" {
				// The caller asked for this category specifically.
				return nil, h.err
			}
			response.Skipped = append(response.Skipped, h.category)
			continue
		}
		pool = append(pool, h.results...)
	}

	// Stable sort: ties keep category order then load order.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Score > pool[j].Score
	})

	if len(pool) > req.Limit {
		pool = pool[:req.Limit]
	}
	for i := range pool {
		pool[i].Rank = i + 1
	}

	response.Results = pool
	response.TotalResults = len(pool)
	response.Duration = time.Since(startTime)

	if req.UseCache && len(response.Results) > 0 {
		s.storeInCache(req, response)
	}

	return response, nil
}

// searchCategory scores the query against one category and keeps the
// strictly-positive matches in load order. Absent and empty indices yield
// no hits and no error.
func (s *Searcher) searchCategory(ctx context.Context, cat types.Category, queryTokens []string) categoryHits {
	h := categoryHits{category: cat}

	idx, records, err := s.registry.Ensure(ctx, cat)
	if err != nil {
		h.err = err
		return h
	}
	if idx == nil {
		return h
	}

	scores := idx.Scores(queryTokens)
	for i, score := range scores {
		if score > 0 {
			h.results = append(h.results, types.SearchResult{
				Category: cat,
				Record:   records[i],
				Score:    score,
			})
		}
	}
	return h
}

// validateRequest ensures the search request is valid and fills defaults.
func (s *Searcher) validateRequest(req *SearchRequest) error {
	if req.Category != "" && !req.Category.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidCategory, req.Category)
	}

	if req.Limit <= 0 {
		req.Limit = DefaultLimit
	}
	if req.Limit > MaxLimit {
		req.Limit = MaxLimit
	}

	if req.CacheTTL == 0 {
		req.CacheTTL = defaultCacheTTL
	}

	return nil
}

// checkCache looks up a cached response, returning nil on miss or expiry.
func (s *Searcher) checkCache(req SearchRequest) *SearchResponse {
	hash := computeQueryHash(req)
	now := time.Now()

	s.cacheMu.RLock()
	entry, found := s.cache.Get(hash)
	if !found {
		s.cacheMu.RUnlock()
		return nil
	}

	if now.After(entry.expiresAt) {
		s.cacheMu.RUnlock()
		s.cacheMu.Lock()
		s.cache.Remove(hash)
		s.cacheMu.Unlock()
		return nil
	}

	response := copySearchResponse(entry.response)
	s.cacheMu.RUnlock()

	return response
}

// storeInCache saves a response under the request's hash.
func (s *Searcher) storeInCache(req SearchRequest, response *SearchResponse) {
	entry := &cacheEntry{
		response:  copySearchResponse(response),
		expiresAt: time.Now().Add(req.CacheTTL),
	}

	s.cacheMu.Lock()
	s.cache.Add(computeQueryHash(req), entry)
	s.cacheMu.Unlock()
}

// copySearchResponse copies a response so cached state cannot be mutated
// through a returned slice. Records themselves are immutable after load, so
// sharing them is safe.
func copySearchResponse(src *SearchResponse) *SearchResponse {
	if src == nil {
		return nil
	}

	dst := &SearchResponse{
		TotalResults: src.TotalResults,
		Duration:     src.Duration,
		CacheHit:     src.CacheHit,
		Results:      make([]types.SearchResult, len(src.Results)),
		Skipped:      append([]types.Category(nil), src.Skipped...),
	}
	copy(dst.Results, src.Results)

	return dst
}

// computeQueryHash computes a unique hash for a search request
func computeQueryHash(req SearchRequest) [32]byte {
	var data strings.Builder
	data.WriteString(req.Query)
	data.WriteString("|")
	data.WriteString(string(req.Category))
	data.WriteString("|")
	data.WriteString(fmt.Sprintf("%d", req.Limit))

	return sha256.Sum256([]byte(data.String()))
}

// InvalidateCache drops every cached response. The corpus is immutable per
// process, so this exists for tests and future reload support.
func (s *Searcher) InvalidateCache() {
	s.cacheMu.Lock()
	s.cache.Purge()
	s.cacheMu.Unlock()
}
