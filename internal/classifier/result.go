// Package classifier implements the typed classification domain: result
// construction, tolerant parsing of oracle replies, bounded case summaries,
// and the deterministic indicator fallback.
package classifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clientops/auditor/internal/cases"
	"github.com/clientops/auditor/internal/indicators"
)

// Classification is the behavioral category assigned to a case.
type Classification string

// Classification taxonomy.
const (
	ClassNormal             Classification = "Normal"
	ClassSpecial            Classification = "Special"
	ClassExcessivelySpecial Classification = "Excessively Special"
	ClassDelinquent         Classification = "Delinquent"
	ClassDelinquentSpecial  Classification = "Delinquent + Special"
	ClassUnknown            Classification = "Unknown"
)

// Fault indicates whether the firm contributed to the client conduct.
type Fault string

// Fault values.
const (
	FaultYes     Fault = "Yes"
	FaultNo      Fault = "No"
	FaultUnclear Fault = "Unclear"
)

// Recommendation is the per-case action the audit recommends.
type Recommendation string

// Recommendation values.
const (
	RecommendContinue        Recommendation = "Continue representation"
	RecommendCure            Recommendation = "Send Notice to Cure"
	RecommendTerminate       Recommendation = "Proceed with Termination"
	RecommendExecutiveReview Recommendation = "Executive Review Required"
	RecommendManualReview    Recommendation = "Manual review required"
)

// Outcome is the terminal state of one case's processing.
type Outcome string

// Terminal states.
const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFallback Outcome = "fallback_applied"
	OutcomeError    Outcome = "error"
)

// NotSpecified is the documented placeholder for reply fields the oracle
// omitted.
const NotSpecified = "Not specified"

// Result is the auditable recommendation for one case. Exactly one Result
// is produced per case record; it is never mutated after creation. A
// processing failure produces a fresh error-state Result rather than a
// partial one.
type Result struct {
	CaseID               uuid.UUID           `json:"case_id"`
	CaseName             string              `json:"case_name"`
	Source               string              `json:"source"`
	Classification       Classification      `json:"classification"`
	NoticeSent           string              `json:"notice_sent"`
	FirmFault            Fault               `json:"firm_fault"`
	FirmFaultExplanation string              `json:"firm_fault_explanation"`
	CurrentStatus        string              `json:"current_status"`
	Recommendation       Recommendation      `json:"recommendation"`
	Reasoning            string              `json:"reasoning"`
	KeyEvidence          string              `json:"key_evidence"`
	Indicators           indicators.MatchSet `json:"indicators,omitempty"`
	Outcome              Outcome             `json:"outcome"`
	RawReply             string              `json:"raw_reply,omitempty"`
	ModelName            string              `json:"model_name,omitempty"`
	ProviderName         string              `json:"provider_name,omitempty"`
	ClassifiedAt         time.Time           `json:"classified_at"`
}

// ParseClassification maps free-text oracle classification values onto the
// taxonomy, tolerating casing and phrasing drift. Unrecognized values map
// to ClassUnknown.
func ParseClassification(s string) Classification {
	v := strings.ToLower(s)
	switch {
	case strings.Contains(v, "e-special"), strings.Contains(v, "excessively"):
		return ClassExcessivelySpecial
	case strings.Contains(v, "delinquent") && strings.Contains(v, "special"):
		return ClassDelinquentSpecial
	case strings.Contains(v, "delinquent"):
		return ClassDelinquent
	case strings.Contains(v, "special"):
		return ClassSpecial
	case strings.Contains(v, "normal"):
		return ClassNormal
	default:
		return ClassUnknown
	}
}

// ParseFault maps free-text firm-fault values to the typed variant.
// Anything other than a clear yes or no is Unclear.
func ParseFault(s string) Fault {
	v := strings.ToLower(strings.TrimSpace(s))
	word, _, _ := strings.Cut(v, " ")
	switch strings.TrimRight(word, ".,;:") {
	case "yes":
		return FaultYes
	case "no":
		return FaultNo
	default:
		return FaultUnclear
	}
}

// ParseRecommendation maps free-text recommendation values to the typed
// variant. Unrecognized values fall to manual review, never to a
// termination action.
func ParseRecommendation(s string) Recommendation {
	v := strings.ToLower(s)
	switch {
	case strings.Contains(v, "continue"):
		return RecommendContinue
	case strings.Contains(v, "cure"):
		return RecommendCure
	case strings.Contains(v, "terminat"):
		return RecommendTerminate
	case strings.Contains(v, "executive"):
		return RecommendExecutiveReview
	default:
		return RecommendManualReview
	}
}

// ErrorResult builds the error-state Result for a case whose processing
// failed. The error message is captured in the firm-fault explanation
// field and the recommendation is forced to manual review, so the case
// still appears in the batch output with an explicit status.
func ErrorResult(rec cases.Record, err error) Result {
	return Result{
		CaseID:               rec.ID,
		CaseName:             rec.CaseName,
		Source:               rec.Source,
		Classification:       ClassUnknown,
		NoticeSent:           NotSpecified,
		FirmFault:            FaultUnclear,
		FirmFaultExplanation: fmt.Sprintf("Error: %v", err),
		CurrentStatus:        "Error",
		Recommendation:       RecommendManualReview,
		Reasoning:            "Automated analysis failed",
		KeyEvidence:          NotSpecified,
		Outcome:              OutcomeError,
		ClassifiedAt:         time.Now(),
	}
}
