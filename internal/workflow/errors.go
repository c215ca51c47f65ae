// Package workflow implements the per-case classification workflow as a
// state graph: summarize → classify → fallback? → finalize. The classify
// node consults the reasoning oracle; any oracle failure routes through the
// deterministic fallback node instead of failing the case.
package workflow

import "errors"

// Sentinel errors for workflow operations.
var (
	ErrSummarizeFailed = errors.New("summarize failed")
	ErrClassifyFailed  = errors.New("classification failed")
	ErrFinalizeFailed  = errors.New("finalize failed")
)
