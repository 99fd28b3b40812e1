// Package corpus loads per-category design record collections from a
// backing data source.
//
// Two loaders are provided behind the Loader interface: a CSV loader that
// reads one file per category from a data directory, and a SQLite loader
// that reads one table per category. Both preserve source field order and
// assign records their stable 0-based load positions.
//
// # Error Semantics
//
// A missing file or table, or a source with zero rows, is a normal outcome:
// Load returns an empty slice and a nil error, and the category simply
// contributes nothing to searches. ErrSourceUnavailable is returned only
// when the source exists but cannot be read (I/O failure, corrupt data),
// and is the one loader condition surfaced to callers:
//
//	records, err := loader.Load(ctx, types.CategoryProduct)
//	if errors.Is(err, corpus.ErrSourceUnavailable) {
//	    // source is broken, a retry may help
//	}
//
// # SQLite Drivers
//
// The SQLite loader compiles against either mattn/go-sqlite3 (cgo builds)
// or modernc.org/sqlite (pure Go) depending on build tags; see driver_cgo.go
// and driver_purego.go.
package corpus
