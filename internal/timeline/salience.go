package timeline

import (
	"regexp"
	"sort"
	"strings"
)

// Lexicon maps a salience category to the keywords that signal it. Scoring
// counts distinct matched categories, not raw occurrences, so one repeated
// word cannot dominate the ranking.
type Lexicon map[string][]string

// DefaultLexicon returns the behavior-relevant salience categories used to
// rank events for summary selection.
func DefaultLexicon() Lexicon {
	return Lexicon{
		"distress":    {"angry", "upset", "frustrated", "dissatisfied", "demand", "incompetent"},
		"threat":      {"threat", "lawsuit", "sue", "state bar", "fraud", "profanity", "yell", "scream"},
		"complaint":   {"complaint", "complain", "issue with", "not happy"},
		"review":      {"review", "google", "yelp", "reputation"},
		"termination": {"fire", "terminate", "refund", "withdraw", "hang up", "hung up", "refused to speak"},
	}
}

// Scorer assigns salience scores to events and selects a bounded subset.
type Scorer struct {
	categories map[string]*regexp.Regexp
}

// NewScorer compiles one case-insensitive pattern per lexicon category.
// A nil lexicon uses DefaultLexicon.
func NewScorer(lexicon Lexicon) *Scorer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}

	categories := make(map[string]*regexp.Regexp, len(lexicon))
	for category, keywords := range lexicon {
		if len(keywords) == 0 {
			continue
		}
		escaped := make([]string, len(keywords))
		for i, kw := range keywords {
			escaped[i] = regexp.QuoteMeta(kw)
		}
		// Keywords are stems: anchor the start of the word but allow
		// suffixes, so "threat" matches "threatened" while "sue" never
		// matches inside "issue".
		categories[category] = regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)`)
	}

	return &Scorer{categories: categories}
}

// Score returns the number of distinct lexicon categories matched by the
// event body. Scoring is deterministic: the same input always yields the
// same score.
func (s *Scorer) Score(e Event) int {
	score := 0
	for _, pattern := range s.categories {
		if pattern.MatchString(e.Body) {
			score++
		}
	}
	return score
}

// Select returns the top-n events by salience score, ties broken by recency
// (the later date wins, flagged events losing ties to dated ones). If no
// event scores above zero it falls back to the most recent n events in
// timeline order, so the selection is non-empty whenever events is
// non-empty. Events are never fabricated and the result size never
// exceeds n.
func (s *Scorer) Select(events []Event, n int) []Event {
	if n <= 0 || len(events) == 0 {
		return nil
	}

	type scored struct {
		event Event
		score int
	}

	ranked := make([]scored, 0, len(events))
	for _, e := range events {
		if sc := s.Score(e); sc > 0 {
			ranked = append(ranked, scored{event: e, score: sc})
		}
	}

	if len(ranked) == 0 {
		if n > len(events) {
			n = len(events)
		}
		return append([]Event(nil), events[len(events)-n:]...)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.event.Flagged != b.event.Flagged {
			return b.event.Flagged
		}
		return a.event.Date.After(b.event.Date)
	})

	if n > len(ranked) {
		n = len(ranked)
	}

	selected := make([]Event, n)
	for i := range selected {
		selected[i] = ranked[i].event
	}
	return selected
}
