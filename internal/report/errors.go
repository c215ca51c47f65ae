package report

import "errors"

var (
	// ErrNoResults indicates a render was requested with an empty result set.
	ErrNoResults = errors.New("no results to render")
)
