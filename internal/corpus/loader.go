package corpus

import (
	"context"
	"errors"

	"github.com/designkit/designsearch-mcp/pkg/types"
)

// ErrSourceUnavailable indicates the backing data source exists but could
// not be read. It is distinct from "no data": a missing file or zero rows
// yields an empty slice and a nil error.
var ErrSourceUnavailable = errors.New("design data source unavailable")

// Loader supplies the ordered record collection for a category. Load must
// return records in source order; their slice positions become the stable
// document identifiers for the category's index.
type Loader interface {
	Load(ctx context.Context, category types.Category) ([]types.Record, error)
}
