package index

import (
	"math"

	"github.com/designkit/designsearch-mcp/internal/tokenizer"
	"github.com/designkit/designsearch-mcp/pkg/types"
)

// Default BM25 tuning constants. k1 controls term-frequency saturation, b
// controls document-length normalization.
const (
	DefaultK1 = 1.5
	DefaultB  = 0.75
)

// Params holds the BM25 tuning constants for an index.
type Params struct {
	K1 float64
	B  float64
}

// DefaultParams returns the standard BM25 defaults.
func DefaultParams() Params {
	return Params{K1: DefaultK1, B: DefaultB}
}

// normalize fills in zero values with defaults so a partially-populated
// Params from config is still usable.
func (p Params) normalize() Params {
	if p.K1 <= 0 {
		p.K1 = DefaultK1
	}
	if p.B < 0 || p.B > 1 {
		p.B = DefaultB
	}
	return p
}

// Index holds the precomputed BM25 statistics for one category's record
// collection. It is immutable once built.
type Index struct {
	params Params

	termFreqs []map[string]int // per document, in load order
	docFreq   map[string]int   // documents containing each term
	docLens   []int            // token count per document
	avgDocLen float64
	docCount  int
}

// Build constructs an index from a record collection. It returns nil for an
// empty collection: an absent index, not an empty one. Callers treat a nil
// index as "category contributes nothing".
func Build(records []types.Record, params Params) *Index {
	if len(records) == 0 {
		return nil
	}

	idx := &Index{
		params:    params.normalize(),
		termFreqs: make([]map[string]int, len(records)),
		docFreq:   make(map[string]int),
		docLens:   make([]int, len(records)),
		docCount:  len(records),
	}

	totalLen := 0
	for i, rec := range records {
		tokens := tokenizer.TokenizeRecord(rec)

		tf := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
		}
		for term := range tf {
			idx.docFreq[term]++
		}

		idx.termFreqs[i] = tf
		idx.docLens[i] = len(tokens)
		totalLen += len(tokens)
	}

	idx.avgDocLen = float64(totalLen) / float64(len(records))
	return idx
}

// Scores computes the BM25 score of every document against the query
// tokens. The result has one entry per document in load order, stable
// across repeated calls. An empty query yields all zeros.
func (idx *Index) Scores(queryTokens []string) []float64 {
	scores := make([]float64, idx.docCount)
	if len(queryTokens) == 0 {
		return scores
	}

	for _, term := range queryTokens {
		df, ok := idx.docFreq[term]
		if !ok {
			continue
		}

		idf := math.Log((float64(idx.docCount)-float64(df)+0.5)/(float64(df)+0.5) + 1)

		for i := range scores {
			tf := float64(idx.termFreqs[i][term])
			if tf == 0 {
				continue
			}

			norm := 1 - idx.params.B + idx.params.B*float64(idx.docLens[i])/idx.avgDocLen
			scores[i] += idf * tf * (idx.params.K1 + 1) / (tf + idx.params.K1*norm)
		}
	}

	return scores
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return idx.docCount
}

// VocabSize returns the number of distinct terms in the index.
func (idx *Index) VocabSize() int {
	return len(idx.docFreq)
}

// AvgDocLen returns the average document length in tokens.
func (idx *Index) AvgDocLen() float64 {
	return idx.avgDocLen
}
