// Package prompts holds the fixed instructions and output specifications
// sent to the reasoning oracle, keyed by workflow stage.
package prompts

// Stage represents a workflow stage that a prompt targets.
type Stage string

// Valid workflow stages.
const (
	StageClassify Stage = "classify"
)
