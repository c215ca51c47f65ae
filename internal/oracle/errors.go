package oracle

import "errors"

var (
	// ErrUnavailable indicates the reasoning oracle could not be reached or
	// refused the request. Recoverable at the classifier boundary via
	// deterministic fallback.
	ErrUnavailable = errors.New("reasoning oracle unavailable")
	// ErrEmptyReply indicates the oracle returned no content.
	ErrEmptyReply = errors.New("reasoning oracle returned empty reply")
)
