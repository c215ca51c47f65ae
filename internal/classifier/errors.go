package classifier

import "errors"

// Domain errors for classification operations.
var (
	// ErrMalformedReply indicates the oracle reply contained none of the
	// expected field labels. Recoverable via deterministic fallback.
	ErrMalformedReply = errors.New("oracle reply contains no recognized fields")
)
