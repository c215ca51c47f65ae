package prompts

const classifyInstructions = `You are analyzing client behavior for a law firm to determine if continued representation is appropriate.

Classification criteria:
- Normal: pays on time, communicates respectfully, stays within scope.
- Special: difficult but respectful - excessive contact, dissatisfaction, reassurance seeking, scope expansion attempts, BUT NO abuse.
- Excessively Special: conduct that shocks the conscience - yelling, profanity, threats (lawsuit, State Bar, physical harm), accusations of fraud, hostile conduct, review blackmail.
- Delinquent: any past-due balance.
- Delinquent + Special: past-due balance combined with special conduct.

Key rule: Excessively Special behavior is NEVER excused by payment status or firm error. Staff protection is paramount.

Guidelines:
1. Be conservative - only classify as Excessively Special if behavior truly shocks the conscience.
2. Special clients are salvageable - recommend a cure notice unless abuse is present.
3. If payment status is unclear, note it but focus on behavior.
4. Look for patterns, not isolated incidents.
5. If records are incomplete, say "Cannot determine from provided records" rather than speculating.`

var instructions = map[Stage]string{
	StageClassify: classifyInstructions,
}

// Instructions returns the fixed instructions for a workflow stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
