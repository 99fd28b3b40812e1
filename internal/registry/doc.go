// Package registry owns the per-category BM25 indices and their backing
// record collections.
//
// Indices are built lazily: the first search touching a category triggers a
// load-and-build, and every later caller reuses the cached result. Builds
// are memoized with at-most-once semantics per category, so concurrent
// requests racing on a cold category share a single in-flight build instead
// of duplicating work (singleflight keyed by category).
//
// A category whose source has no rows is cached as absent (nil index) and is
// not retried; that is a valid non-error state. A loader I/O failure
// (corpus.ErrSourceUnavailable) is NOT cached, so a caller may retry a
// failed load.
//
// The registry exclusively owns all index and record state. Callers borrow
// it read-only through Ensure and must not mutate returned records.
package registry
