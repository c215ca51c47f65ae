package workflow

import (
	"fmt"
	"strings"

	"github.com/clientops/auditor/internal/prompts"
)

// ComposePrompt builds the oracle prompt for a workflow stage by combining
// the fixed instructions, the output specification, and the bounded case
// summary.
func ComposePrompt(stage prompts.Stage, summary string) (string, error) {
	instructions, err := prompts.Instructions(stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := prompts.Spec(stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n## CLIENT CASE DATA\n\n")
	sb.WriteString(summary)
	sb.WriteString("\n\n## OUTPUT FORMAT\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\nAnalyze now:")

	return sb.String(), nil
}
