package workflow

import (
	"context"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/clientops/auditor/internal/cases"
	"github.com/clientops/auditor/internal/classifier"
)

// Execute runs the classification workflow for a single case record. It
// builds the state graph (summarize → classify → fallback? → finalize),
// executes it, and extracts the Result from the final state. Oracle
// failures resolve inside the graph via the fallback path; Execute itself
// errors only on graph construction, context cancellation, or a corrupted
// state bag.
func Execute(ctx context.Context, rt *Runtime, rec cases.Record) (*classifier.Result, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyCaseRecord, rec)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("conduct-classify")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("summarize", SummarizeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("classify", ClassifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("fallback", FallbackNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finalize", FinalizeNode(rt)); err != nil {
		return nil, err
	}

	// summarize → classify (unconditional)
	if err := graph.AddEdge("summarize", "classify", nil); err != nil {
		return nil, err
	}

	// classify → fallback (when the oracle path failed)
	if err := graph.AddEdge("classify", "fallback", oracleFailed); err != nil {
		return nil, err
	}

	// classify → finalize (when the oracle replied and parsed)
	if err := graph.AddEdge("classify", "finalize", state.Not(oracleFailed)); err != nil {
		return nil, err
	}

	// fallback → finalize (unconditional)
	if err := graph.AddEdge("fallback", "finalize", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("summarize"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finalize"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*classifier.Result, error) {
	val, ok := s.Get(KeyResult)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in final state", ErrFinalizeFailed, KeyResult)
	}

	result, ok := val.(classifier.Result)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not classifier.Result", ErrFinalizeFailed, KeyResult)
	}

	return &result, nil
}
