package workflow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/clientops/auditor/internal/cases"
	"github.com/clientops/auditor/internal/classifier"
	"github.com/clientops/auditor/internal/config"
	"github.com/clientops/auditor/internal/indicators"
	"github.com/clientops/auditor/internal/prompts"
	"github.com/clientops/auditor/internal/timeline"
	"github.com/clientops/auditor/internal/workflow"
)

// mockOracle returns canned replies, failing the first failures calls.
type mockOracle struct {
	reply    string
	err      error
	failures int
	calls    int
}

func (m *mockOracle) Consult(_ context.Context, _ string) (string, error) {
	m.calls++
	if m.err != nil && (m.failures == 0 || m.calls <= m.failures) {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockOracle) Model() string    { return "test-model" }
func (m *mockOracle) Provider() string { return "test-provider" }

const classifiedReply = `CLASSIFICATION: Special
NOTICE SENT: None
FIRM FAULT: No
FIRM FAULT EXPLANATION: Firm responded promptly throughout
CURRENT STATUS: Active
RECOMMENDATION: Send Notice to Cure
REASONING: Repeated reassurance-seeking calls
KEY EVIDENCE: Daily calls in March`

func newRuntime(t *testing.T, o *mockOracle) *workflow.Runtime {
	t.Helper()

	engine, err := indicators.NewEngine(nil, nil)
	if err != nil {
		t.Fatalf("engine init failed: %v", err)
	}

	pipeline := config.PipelineConfig{}
	if err := pipeline.Finalize(); err != nil {
		t.Fatalf("pipeline finalize failed: %v", err)
	}
	pipeline.OracleTimeout = "5s"

	return &workflow.Runtime{
		Oracle:   o,
		Engine:   engine,
		Scorer:   timeline.NewScorer(nil),
		Pipeline: pipeline,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func record(raw string) cases.Record {
	return cases.Record{
		ID:       uuid.New(),
		CaseName: "Doe, Jane",
		Source:   "doe_jane.txt",
		Timeline: timeline.NewSegmenter(0).Segment(raw),
		RawText:  raw,
	}
}

func TestExecuteOraclePath(t *testing.T) {
	o := &mockOracle{reply: classifiedReply}
	rt := newRuntime(t, o)
	rec := record("3/15/2024 - Client called again asking for any update.\n3/16/2024 - Client called constantly.")

	result, err := workflow.Execute(context.Background(), rt, rec)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if result.Outcome != classifier.OutcomeSuccess {
		t.Errorf("got outcome %q, want %q", result.Outcome, classifier.OutcomeSuccess)
	}
	if result.Classification != classifier.ClassSpecial {
		t.Errorf("got classification %q, want %q", result.Classification, classifier.ClassSpecial)
	}
	if result.Recommendation != classifier.RecommendCure {
		t.Errorf("got recommendation %q, want %q", result.Recommendation, classifier.RecommendCure)
	}
	if result.FirmFault != classifier.FaultNo {
		t.Errorf("got fault %q, want %q", result.FirmFault, classifier.FaultNo)
	}
	if result.ModelName != "test-model" || result.ProviderName != "test-provider" {
		t.Errorf("got model %q provider %q", result.ModelName, result.ProviderName)
	}
	if result.RawReply != classifiedReply {
		t.Error("raw reply should be retained for audit")
	}
	if !result.Indicators.HasFamily(indicators.FamilySpecial) {
		t.Error("deterministic indicator matches should ride along on the result")
	}
	if o.calls != 1 {
		t.Errorf("got %d oracle calls, want 1", o.calls)
	}
}

func TestExecuteFallbackOnOracleFailure(t *testing.T) {
	o := &mockOracle{err: errors.New("connection refused")}
	rt := newRuntime(t, o)
	rec := record("3/15/2024 - Client said he would sue the firm and file a state bar complaint.")

	result, err := workflow.Execute(context.Background(), rt, rec)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if result.Outcome != classifier.OutcomeFallback {
		t.Errorf("got outcome %q, want %q", result.Outcome, classifier.OutcomeFallback)
	}
	if result.Classification != classifier.ClassExcessivelySpecial {
		t.Errorf("got classification %q, want %q", result.Classification, classifier.ClassExcessivelySpecial)
	}
	if result.Recommendation != classifier.RecommendExecutiveReview {
		t.Errorf("got recommendation %q, want %q", result.Recommendation, classifier.RecommendExecutiveReview)
	}
	if o.calls != rt.Pipeline.OracleRetries+1 {
		t.Errorf("got %d oracle calls, want %d attempts", o.calls, rt.Pipeline.OracleRetries+1)
	}
}

func TestExecuteFallbackOnUnparsableReply(t *testing.T) {
	o := &mockOracle{reply: "I am not able to fill in the requested fields."}
	rt := newRuntime(t, o)
	rec := record("3/15/2024 - Client complained: not happy with the service.")

	result, err := workflow.Execute(context.Background(), rt, rec)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if result.Outcome != classifier.OutcomeFallback {
		t.Errorf("got outcome %q, want %q", result.Outcome, classifier.OutcomeFallback)
	}
	if result.Classification != classifier.ClassSpecial {
		t.Errorf("got classification %q, want %q", result.Classification, classifier.ClassSpecial)
	}
	if result.RawReply == "" {
		t.Error("unparsable replies should still be retained for audit")
	}
}

func TestExecuteFallbackRoutineCase(t *testing.T) {
	o := &mockOracle{err: errors.New("unavailable")}
	rt := newRuntime(t, o)
	rec := record("3/15/2024 - Retainer payment received.\n3/16/2024 - Biometrics notice forwarded to client.")

	result, err := workflow.Execute(context.Background(), rt, rec)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if result.Classification != classifier.ClassUnknown {
		t.Errorf("got classification %q, want %q", result.Classification, classifier.ClassUnknown)
	}
	if result.Recommendation != classifier.RecommendManualReview {
		t.Errorf("got recommendation %q, want %q", result.Recommendation, classifier.RecommendManualReview)
	}
}

func TestExecuteRetriesTransientFailure(t *testing.T) {
	o := &mockOracle{reply: classifiedReply, err: errors.New("timeout"), failures: 2}
	rt := newRuntime(t, o)
	rec := record("3/15/2024 - Client called.")

	result, err := workflow.Execute(context.Background(), rt, rec)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if result.Outcome != classifier.OutcomeSuccess {
		t.Errorf("got outcome %q, want success after retries", result.Outcome)
	}
	if o.calls != 3 {
		t.Errorf("got %d oracle calls, want 3", o.calls)
	}
}

func TestExecuteCanceled(t *testing.T) {
	o := &mockOracle{reply: classifiedReply}
	rt := newRuntime(t, o)
	rec := record("3/15/2024 - Client called.")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := workflow.Execute(ctx, rt, rec); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestComposePrompt(t *testing.T) {
	prompt, err := workflow.ComposePrompt(prompts.StageClassify, "Case Name: Doe, Jane")
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	for _, want := range []string{
		"Case Name: Doe, Jane",
		"## CLIENT CASE DATA",
		"## OUTPUT FORMAT",
		"CLASSIFICATION:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestComposePromptInvalidStage(t *testing.T) {
	if _, err := workflow.ComposePrompt(prompts.Stage("unknown"), "summary"); err == nil {
		t.Error("expected error for unknown stage")
	}
}
