package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/clientops/auditor/internal/classifier"
	"github.com/clientops/auditor/internal/prompts"
)

// ClassifyNode returns a state node that consults the reasoning oracle with
// the bounded case summary and parses its labeled-field reply. An oracle
// failure — unreachable after the configured retries, empty reply, or a
// reply with no recognized fields — is recorded on the case state instead
// of failing the node, so the graph routes through the fallback path. The
// only error this node returns past the case boundary is context
// cancellation.
func ClassifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		cs, err := extractCaseState(s)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		prompt, err := ComposePrompt(prompts.StageClassify, cs.Summary)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		raw, err := consult(ctx, rt, prompt)
		if err != nil {
			if ctx.Err() != nil {
				return s, ctx.Err()
			}

			rt.Logger.WarnContext(
				ctx, "oracle consultation failed, routing to fallback",
				"error", err,
			)

			cs.OracleErr = err
			s = s.Set(KeyCaseState, *cs)
			return s, nil
		}

		cs.RawReply = raw

		reply, err := classifier.ParseReply(raw)
		if err != nil {
			rt.Logger.WarnContext(
				ctx, "oracle reply unparsable, routing to fallback",
				"error", err,
			)

			cs.OracleErr = err
			s = s.Set(KeyCaseState, *cs)
			return s, nil
		}

		cs.Reply = reply

		rt.Logger.InfoContext(
			ctx, "classify node complete",
			"classification", reply.Classification,
		)

		s = s.Set(KeyCaseState, *cs)
		return s, nil
	})
}

// consult issues the oracle call with a per-attempt timeout, retrying
// transient failures up to the configured attempt budget. Cancellation of
// the parent context stops retrying immediately.
func consult(ctx context.Context, rt *Runtime, prompt string) (string, error) {
	timeout := rt.Pipeline.OracleTimeoutDuration()
	attempts := rt.Pipeline.OracleRetries + 1

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		raw, err := rt.Oracle.Consult(callCtx, prompt)
		cancel()

		if err == nil {
			return raw, nil
		}
		lastErr = err

		if attempt < attempts {
			rt.Logger.WarnContext(
				ctx, "oracle attempt failed, retrying",
				"attempt", attempt,
				"error", err,
			)
		}
	}

	return "", fmt.Errorf("%w: %w", ErrClassifyFailed, lastErr)
}

// oracleFailed is the edge condition routing classify → fallback.
func oracleFailed(s state.State) bool {
	val, ok := s.Get(KeyCaseState)
	if !ok {
		return false
	}

	cs, ok := val.(CaseState)
	if !ok {
		return false
	}

	return cs.OracleErr != nil
}
