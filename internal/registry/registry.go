package registry

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/designkit/designsearch-mcp/internal/corpus"
	"github.com/designkit/designsearch-mcp/internal/index"
	"github.com/designkit/designsearch-mcp/pkg/types"
)

// Registry maps categories to lazily-built indices and owns their lifecycle.
type Registry struct {
	loader corpus.Loader
	params index.Params

	mu      sync.RWMutex
	entries map[types.Category]*entry

	group singleflight.Group
}

// entry is a completed build outcome for one category. index is nil when
// the category's source had no records.
type entry struct {
	index   *index.Index
	records []types.Record
}

// New creates a registry backed by the given loader. params tunes the BM25
// indices built for every category.
func New(loader corpus.Loader, params index.Params) *Registry {
	return &Registry{
		loader:  loader,
		params:  params,
		entries: make(map[types.Category]*entry),
	}
}

// Ensure returns the category's index and records, building them on first
// use. The returned index is nil when the category has no records; that
// outcome is cached and not retried. A corpus.ErrSourceUnavailable from the
// loader is returned without caching, so the next call retries the load.
//
// Concurrent calls for the same cold category share one build.
func (r *Registry) Ensure(ctx context.Context, cat types.Category) (*index.Index, []types.Record, error) {
	if !cat.Valid() {
		return nil, nil, types.ErrInvalidCategory
	}

	if e, ok := r.lookup(cat); ok {
		return e.index, e.records, nil
	}

	v, err, _ := r.group.Do(string(cat), func() (any, error) {
		// A previous flight may have completed between lookup and Do.
		if e, ok := r.lookup(cat); ok {
			return e, nil
		}

		records, err := r.loader.Load(ctx, cat)
		if err != nil {
			return nil, err
		}

		e := &entry{
			index:   index.Build(records, r.params),
			records: records,
		}

		r.mu.Lock()
		r.entries[cat] = e
		r.mu.Unlock()

		return e, nil
	})
	if err != nil {
		return nil, nil, err
	}

	e := v.(*entry)
	return e.index, e.records, nil
}

func (r *Registry) lookup(cat types.Category) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[cat]
	return e, ok
}

// CategoryStatus describes one category's index state for status reporting.
type CategoryStatus struct {
	Category  types.Category
	Built     bool // a build completed (possibly with zero records)
	Documents int
	VocabSize int
	AvgDocLen float64
}

// Status returns a snapshot of every category's index state in canonical
// order. It never triggers builds.
func (r *Registry) Status() []CategoryStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statuses := make([]CategoryStatus, 0, len(types.Categories()))
	for _, cat := range types.Categories() {
		status := CategoryStatus{Category: cat}
		if e, ok := r.entries[cat]; ok {
			status.Built = true
			if e.index != nil {
				status.Documents = e.index.Len()
				status.VocabSize = e.index.VocabSize()
				status.AvgDocLen = e.index.AvgDocLen()
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}
