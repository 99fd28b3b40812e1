package types

import "errors"

// Domain errors for type validation
var (
	// Search result errors
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidRank     = errors.New("rank must be >= 1")
	ErrInvalidScore    = errors.New("score must be positive")
	ErrEmptyRecord     = errors.New("record cannot be empty")
)
