// Package tokenizer converts raw text and records into lowercase token
// sequences for BM25 indexing and scoring.
//
// Tokenization is intentionally minimal: lowercase with simple case folding,
// then split on runs of whitespace. There is no stemming, no stop-word
// removal, and no punctuation stripping; "sign-up" and "dashboard," are
// single tokens. Keeping query and document tokenization identical is what
// makes matching work, so both paths go through the same Tokenize function.
//
// # Usage
//
//	tokens := tokenizer.Tokenize("Minimalist SaaS Dashboard")
//	// ["minimalist", "saas", "dashboard"]
//
//	docTokens := tokenizer.TokenizeRecord(rec)
//	// all non-empty field values, space-joined in field order, tokenized
package tokenizer
