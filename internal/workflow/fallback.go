package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/clientops/auditor/internal/classifier"
)

// FallbackNode returns a state node that applies the deterministic
// indicator classification when the oracle path failed. The same node
// serves both failure modes — unreachable oracle and unparsable reply —
// so the fallback behavior is exercised identically for either.
func FallbackNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rec, err := extractRecord(s)
		if err != nil {
			return s, fmt.Errorf("fallback: %w", err)
		}

		cs, err := extractCaseState(s)
		if err != nil {
			return s, fmt.Errorf("fallback: %w", err)
		}

		result := classifier.FallbackResult(rec, cs.Matches, cs.OracleErr)
		result.RawReply = cs.RawReply

		rt.Logger.InfoContext(
			ctx, "fallback node complete",
			"case", rec.CaseName,
			"classification", result.Classification,
			"recommendation", result.Recommendation,
		)

		s = s.Set(KeyResult, result)
		return s, nil
	})
}
