package tokenizer

import (
	"strings"

	"github.com/designkit/designsearch-mcp/pkg/types"
)

// Tokenize converts text into a sequence of lowercase tokens, splitting on
// runs of whitespace. Identical input always yields an identical sequence;
// repeated tokens are kept because term frequency matters for scoring.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// TokenizeRecord produces the token sequence for a record: every non-empty
// field value, joined with a single space in field order, then tokenized.
// Empty and absent fields contribute nothing. The result is a pure function
// of the record's field values.
func TokenizeRecord(rec types.Record) []string {
	var parts []string
	for _, key := range rec.Keys() {
		if v := rec.Get(key); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return Tokenize(strings.Join(parts, " "))
}
