package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/clientops/auditor/internal/cases"
	"github.com/clientops/auditor/internal/classifier"
	"github.com/clientops/auditor/internal/indicators"
)

// SummarizeNode returns a state node that selects the salient timeline
// subset, scans it for behavioral indicators, and builds the bounded case
// summary sent to the oracle. The indicator matches ride along in the case
// state so the fallback path never rescans.
func SummarizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rec, err := extractRecord(s)
		if err != nil {
			return s, fmt.Errorf("summarize: %w", err)
		}

		salient := rt.Scorer.Select(rec.Timeline, rt.Pipeline.MaxSummaryEvents)

		var matches indicators.MatchSet
		for _, e := range salient {
			matches = matches.Merge(rt.Engine.Scan(e.Body))
		}

		summary := classifier.BuildSummary(rec, salient, rt.Pipeline.SummaryCharBudget)

		rt.Logger.InfoContext(
			ctx, "summarize node complete",
			"case", rec.CaseName,
			"events_total", len(rec.Timeline),
			"events_selected", len(salient),
			"indicator_matches", len(matches),
		)

		s = s.Set(KeyCaseState, CaseState{
			Salient: salient,
			Summary: summary,
			Matches: matches,
		})
		return s, nil
	})
}

func extractRecord(s state.State) (cases.Record, error) {
	val, ok := s.Get(KeyCaseRecord)
	if !ok {
		return cases.Record{}, fmt.Errorf("%w: missing %s in state", ErrSummarizeFailed, KeyCaseRecord)
	}

	rec, ok := val.(cases.Record)
	if !ok {
		return cases.Record{}, fmt.Errorf("%w: %s is not cases.Record", ErrSummarizeFailed, KeyCaseRecord)
	}

	return rec, nil
}

func extractCaseState(s state.State) (*CaseState, error) {
	val, ok := s.Get(KeyCaseState)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrClassifyFailed, KeyCaseState)
	}

	cs, ok := val.(CaseState)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not CaseState", ErrClassifyFailed, KeyCaseState)
	}

	return &cs, nil
}
