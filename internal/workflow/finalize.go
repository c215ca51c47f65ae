package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/clientops/auditor/internal/classifier"
)

// FinalizeNode returns the exit node. On the oracle path it assembles the
// typed Result from the parsed reply; on the fallback path the result is
// already in the state bag and passes through untouched.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		if _, ok := s.Get(KeyResult); ok {
			return s, nil
		}

		rec, err := extractRecord(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		cs, err := extractCaseState(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		result := classifier.Result{
			CaseID:               rec.ID,
			CaseName:             rec.CaseName,
			Source:               rec.Source,
			Classification:       classifier.ParseClassification(cs.Reply.Classification),
			NoticeSent:           cs.Reply.NoticeSent,
			FirmFault:            classifier.ParseFault(cs.Reply.FirmFault),
			FirmFaultExplanation: cs.Reply.FirmFaultExplanation,
			CurrentStatus:        cs.Reply.CurrentStatus,
			Recommendation:       classifier.ParseRecommendation(cs.Reply.Recommendation),
			Reasoning:            cs.Reply.Reasoning,
			KeyEvidence:          cs.Reply.KeyEvidence,
			Indicators:           cs.Matches,
			Outcome:              classifier.OutcomeSuccess,
			RawReply:             cs.RawReply,
			ModelName:            rt.Oracle.Model(),
			ProviderName:         rt.Oracle.Provider(),
			ClassifiedAt:         time.Now(),
		}

		rt.Logger.InfoContext(
			ctx, "finalize node complete",
			"case", rec.CaseName,
			"classification", result.Classification,
			"recommendation", result.Recommendation,
		)

		s = s.Set(KeyResult, result)
		return s, nil
	})
}
