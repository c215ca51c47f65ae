package indicators_test

import (
	"slices"
	"testing"

	"github.com/clientops/auditor/internal/indicators"
)

func newEngine(t *testing.T) *indicators.Engine {
	t.Helper()
	engine, err := indicators.NewEngine(nil, nil)
	if err != nil {
		t.Fatalf("engine init failed: %v", err)
	}
	return engine
}

func TestScanSpecial(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		name string
		text string
		tags []string
	}{
		{
			"excessive contact",
			"Client called multiple times asking for updates.",
			[]string{"excessive_contact"},
		},
		{
			"dissatisfaction",
			"Client stated she is dissatisfied with the pace of the case.",
			[]string{"dissatisfaction"},
		},
		{
			"reassurance seeking",
			"Client asked if there is any update on the filing.",
			[]string{"reassurance_seeking"},
		},
		{
			"scope expansion only",
			"Client asked: can you also help with an unrelated matter?",
			[]string{"scope_expansion"},
		},
		{
			"management escalation",
			"Client demanded to speak with manager about the delay.",
			[]string{"management_escalation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := engine.Scan(tt.text)
			if got := matches.Tags(indicators.FamilySpecial); !slices.Equal(got, tt.tags) {
				t.Errorf("got special tags %v, want %v", got, tt.tags)
			}
			if matches.HasFamily(indicators.FamilyExcessivelySpecial) {
				t.Errorf("unexpected excessively-special matches: %v",
					matches.Tags(indicators.FamilyExcessivelySpecial))
			}
		})
	}
}

func TestScanExcessivelySpecial(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		name string
		text string
		tags []string
	}{
		{
			"lawsuit and bar threats",
			"Client said: I will sue you and report you to the State Bar.",
			[]string{"threats_bar", "threats_lawsuit"},
		},
		{
			"yelling",
			"Client began to yell at the paralegal.",
			[]string{"yelling"},
		},
		{
			"quoted expletives",
			"Client said fuck this firm and called the paralegal a bitch.",
			[]string{"profanity"},
		},
		{
			"profanity described",
			"Client used profanity and cursing throughout the call.",
			[]string{"profanity"},
		},
		{
			"fraud accusation",
			"Client accused the firm of fraud and theft.",
			[]string{"fraud_accusation"},
		},
		{
			"communication refusal",
			"Client stated he will only speak to the senior partner before hanging up.",
			[]string{"communication_refusal"},
		},
		{
			"bad review threat",
			"Client threatened to leave a bad review on every site.",
			[]string{"threats_review"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := engine.Scan(tt.text)
			if got := matches.Tags(indicators.FamilyExcessivelySpecial); !slices.Equal(got, tt.tags) {
				t.Errorf("got excessively-special tags %v, want %v", got, tt.tags)
			}
		})
	}
}

func TestScanFamiliesIndependent(t *testing.T) {
	engine := newEngine(t)

	matches := engine.Scan("Client raised a complaint about billing, then threatened a lawsuit.")

	if !matches.HasFamily(indicators.FamilySpecial) {
		t.Error("special family should match")
	}
	if !matches.HasFamily(indicators.FamilyExcessivelySpecial) {
		t.Error("excessively-special family should match independently")
	}
}

func TestScanRecordsFragment(t *testing.T) {
	engine := newEngine(t)

	matches := engine.Scan("Client said he would sue the firm.")
	var fragment string
	for _, m := range matches {
		if m.Tag == "threats_lawsuit" {
			fragment = m.MatchedText
		}
	}
	if fragment != "sue" {
		t.Errorf("got fragment %q, want %q", fragment, "sue")
	}
}

func TestScanNoMatches(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"routine", "Retainer payment received. Biometrics notice forwarded to client."},
		{"no substring hit", "Discussed the issuer of the bond at the hearing."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if matches := engine.Scan(tt.text); len(matches) != 0 {
				t.Errorf("got %d matches, want 0: %v", len(matches), matches)
			}
		})
	}
}

func TestScanDeterministicOrder(t *testing.T) {
	engine := newEngine(t)
	text := "Client started to yell, accused us of fraud, and threatened a lawsuit and a bar complaint."

	first := engine.Scan(text)
	for i := 0; i < 10; i++ {
		if got := engine.Scan(text); !slices.Equal(got.Tags(indicators.FamilyExcessivelySpecial),
			first.Tags(indicators.FamilyExcessivelySpecial)) {
			t.Fatal("scan order changed between runs")
		}
	}
}

func TestNewEngineRejectsBadPattern(t *testing.T) {
	if _, err := indicators.NewEngine(indicators.Lexicon{"broken": `(`}, nil); err == nil {
		t.Error("expected compile error for invalid pattern")
	}
}

func TestMatchSetMerge(t *testing.T) {
	a := indicators.MatchSet{
		{Family: indicators.FamilySpecial, Tag: "complaints", MatchedText: "complaint"},
	}
	b := indicators.MatchSet{
		{Family: indicators.FamilySpecial, Tag: "complaints", MatchedText: "complain"},
		{Family: indicators.FamilyExcessivelySpecial, Tag: "yelling", MatchedText: "yell"},
	}

	merged := a.Merge(b)
	if len(merged) != 2 {
		t.Fatalf("got %d matches, want 2 after dedup", len(merged))
	}
	if got := merged.Tags(indicators.FamilySpecial); !slices.Equal(got, []string{"complaints"}) {
		t.Errorf("got special tags %v, want [complaints]", got)
	}
	if !merged.HasFamily(indicators.FamilyExcessivelySpecial) {
		t.Error("merged set should carry the excessively-special match")
	}
}
