package timeline

import "errors"

// Sentinel errors for timeline operations.
var (
	// ErrDateParse indicates a token matched no supported date grammar.
	// The caller decides the fallback policy; the parser never guesses.
	ErrDateParse = errors.New("token matches no supported date grammar")
)
