package workflow

import (
	"github.com/clientops/auditor/internal/classifier"
	"github.com/clientops/auditor/internal/indicators"
	"github.com/clientops/auditor/internal/timeline"
)

// State bag keys.
const (
	KeyCaseRecord = "case_record"
	KeyCaseState  = "case_state"
	KeyResult     = "classification_result"
)

// CaseState holds the per-case data accumulated across workflow nodes:
// the selected salient events, the bounded summary sent to the oracle, the
// deterministic indicator matches, and the oracle exchange. OracleErr is
// non-nil when the oracle path failed — unreachable, empty, or unparsable
// reply — and routes the graph through the fallback node.
type CaseState struct {
	Salient   []timeline.Event
	Summary   string
	Matches   indicators.MatchSet
	RawReply  string
	Reply     classifier.Reply
	OracleErr error
}
