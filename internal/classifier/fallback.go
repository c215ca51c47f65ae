package classifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/clientops/auditor/internal/cases"
	"github.com/clientops/auditor/internal/indicators"
)

// Fallback maps the deterministic indicator matches for a case onto a
// classification and recommendation. Any excessively-special tag forces the
// excessively-special classification regardless of special-family matches;
// no tags at all yields Unknown rather than a fabricated negative finding.
func Fallback(matches indicators.MatchSet) (Classification, Recommendation) {
	switch {
	case matches.HasFamily(indicators.FamilyExcessivelySpecial):
		return ClassExcessivelySpecial, RecommendExecutiveReview
	case matches.HasFamily(indicators.FamilySpecial):
		return ClassSpecial, RecommendCure
	default:
		return ClassUnknown, RecommendManualReview
	}
}

// FallbackResult builds the fallback-state Result for a case whose oracle
// path failed. The same construction applies whether the oracle was
// unreachable or returned unparsable content; cause records which.
func FallbackResult(rec cases.Record, matches indicators.MatchSet, cause error) Result {
	classification, recommendation := Fallback(matches)

	return Result{
		CaseID:               rec.ID,
		CaseName:             rec.CaseName,
		Source:               rec.Source,
		Classification:       classification,
		NoticeSent:           "Cannot determine from records",
		FirmFault:            FaultUnclear,
		FirmFaultExplanation: NotSpecified,
		CurrentStatus:        "Cannot determine",
		Recommendation:       recommendation,
		Reasoning:            fallbackReasoning(matches, cause),
		KeyEvidence:          fallbackEvidence(matches),
		Indicators:           matches,
		Outcome:              OutcomeFallback,
		ClassifiedAt:         time.Now(),
	}
}

func fallbackReasoning(matches indicators.MatchSet, cause error) string {
	var sb strings.Builder
	sb.WriteString("Deterministic indicator fallback applied")
	if cause != nil {
		fmt.Fprintf(&sb, " (oracle failure: %v)", cause)
	}
	sb.WriteString(". ")

	eTags := matches.Tags(indicators.FamilyExcessivelySpecial)
	sTags := matches.Tags(indicators.FamilySpecial)
	switch {
	case len(eTags) > 0:
		fmt.Fprintf(&sb, "Excessively-special indicators present: %s.", strings.Join(eTags, ", "))
	case len(sTags) > 0:
		fmt.Fprintf(&sb, "Special indicators present: %s.", strings.Join(sTags, ", "))
	default:
		sb.WriteString("No behavioral indicators matched; manual review required.")
	}

	return sb.String()
}

func fallbackEvidence(matches indicators.MatchSet) string {
	if len(matches) == 0 {
		return NotSpecified
	}

	fragments := make([]string, 0, len(matches))
	for _, m := range matches {
		fragments = append(fragments, fmt.Sprintf("%s: %q", m.Tag, m.MatchedText))
	}
	return strings.Join(fragments, "; ")
}
