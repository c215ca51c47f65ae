package prompts

const classifySpec = `Respond with plain text using exactly these field labels, one per field, in this order:

CLASSIFICATION: [Normal / Special / Excessively Special / Delinquent / Delinquent + Special]

NOTICE SENT: [Notice to Cure / Notice of Termination / None sent / Cannot determine from records]

FIRM FAULT: [Yes / No / Unclear from records]

FIRM FAULT EXPLANATION: [If Yes: brief explanation of what the firm did wrong. If No: "No firm fault identified." If Unclear: explain what information is missing]

CURRENT STATUS: [Active / Pending Cure / Terminated / Recommended for Termination / Cannot determine]

RECOMMENDATION: [Continue representation / Send Notice to Cure / Proceed with Termination / Executive Review Required]

REASONING: [2-3 sentences explaining your classification and recommendation based on specific evidence from the timeline]

KEY EVIDENCE: [Quote 1-3 specific timeline entries that support your classification]

Behavioral constraints:
- Use the field labels verbatim, each starting its own line
- Do not add fields beyond those listed
- Base every finding on the timeline entries provided, never on speculation`

var specs = map[Stage]string{
	StageClassify: classifySpec,
}

// Spec returns the fixed output specification for a workflow stage.
// Specifications define the expected reply format and behavioral constraints.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
