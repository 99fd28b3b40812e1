// Package index implements per-category BM25 indexing and scoring.
//
// An Index is built once from a category's record collection and is
// immutable afterwards: it retains per-document term frequencies, document
// frequencies per term, document lengths, and the average document length.
// Scoring never rescans raw records.
//
// # Usage
//
//	idx := index.Build(records, index.DefaultParams())
//	if idx == nil {
//	    // empty collection: the category has no index, not an empty one
//	}
//
//	scores := idx.Scores(tokenizer.Tokenize("dashboard analytics"))
//	// one score per record, in load order
//
// # Scoring
//
// The standard BM25 formula is used. For each query token t present in the
// vocabulary, a document d accumulates
//
//	IDF(t) * TF(t,d) * (k1+1) / (TF(t,d) + k1 * (1 - b + b*|d|/avgdl))
//
// with the smoothed IDF(t) = log((N - df(t) + 0.5)/(df(t) + 0.5) + 1), which
// never goes negative for extremely common terms. Tokens absent from the
// vocabulary contribute nothing.
//
// The tuning constants default to k1=1.5 and b=0.75 and can be overridden
// through Params, which is surfaced as a configuration point.
package index
