package types

// SearchResult represents a single search result with relevance information
type SearchResult struct {
	// Identification
	Category Category
	Rank     int // Position in result set (1-based)

	// Scoring
	Score float64 // Raw BM25 score; strictly positive for returned results

	// The matched record, borrowed from the owning category's collection
	Record Record
}

// Validate checks if the search result is valid
func (sr *SearchResult) Validate() error {
	if !sr.Category.Valid() {
		return ErrInvalidCategory
	}

	if sr.Rank < 1 {
		return ErrInvalidRank
	}

	if sr.Score <= 0 {
		return ErrInvalidScore
	}

	if sr.Record.IsEmpty() {
		return ErrEmptyRecord
	}

	return nil
}
