package prompts

import "errors"

// Domain errors for prompt operations.
var (
	ErrInvalidStage = errors.New("stage must be classify")
)
