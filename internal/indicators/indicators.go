// Package indicators implements the deterministic behavioral rule engine.
// It matches activity text against two disjoint indicator families and
// returns the full matched-tag set so callers can combine it with other
// signals and keep an evidentiary trail.
package indicators

import (
	"fmt"
	"regexp"
	"sort"
)

// Family identifies which indicator family a tag belongs to.
type Family string

// Indicator families. A match in either family is independent: the two
// checks never short-circuit each other, and an excessively-special match is
// never suppressed by a special match.
const (
	FamilySpecial            Family = "special"
	FamilyExcessivelySpecial Family = "excessively_special"
)

// Match records one indicator hit: the family, the tag identifying the
// behavioral signal, and the text fragment that matched. Matches are purely
// derived and never persisted apart from the event that produced them.
type Match struct {
	Family      Family `json:"family"`
	Tag         string `json:"tag"`
	MatchedText string `json:"matched_text"`
}

// Lexicon maps indicator tags to their match patterns. Patterns are applied
// case-insensitively against whole words and phrases.
type Lexicon map[string]string

// DefaultSpecialLexicon returns the special-family indicators: difficult but
// respectful conduct that remains salvageable.
func DefaultSpecialLexicon() Lexicon {
	return Lexicon{
		"excessive_contact":     `call(ed)? (again|multiple times|daily|constantly)|excessive contact`,
		"dissatisfaction":       `dissatisfied|unhappy|frustrated|concerned|worried|not satisfied`,
		"reassurance_seeking":   `anything happening|any update|what's going on|when will`,
		"complaints":            `complaint|complain|not happy with|issue with service`,
		"scope_expansion":       `also need|in addition|can you also|outside of contract`,
		"management_escalation": `speak with manager|talk to attorney|escalate|someone in charge`,
	}
}

// DefaultExcessivelySpecialLexicon returns the excessively-special-family
// indicators: conduct that shocks the conscience.
func DefaultExcessivelySpecialLexicon() Lexicon {
	return Lexicon{
		"yelling":               `yell|scream|shout|raised voice`,
		"profanity":             `fuck|shit|damn|bitch|asshole|profanity|cursing|vulgar|expletive`,
		"threats_lawsuit":       `lawsuit|sue|legal action|taking you to court`,
		"threats_bar":           `state bar|bar complaint|report you|file complaint`,
		"threats_physical":      `physical|harm|hurt|violence|beat`,
		"threats_review":        `bad review|yelp|google review|destroy your reputation`,
		"fraud_accusation":      `fraud|theft|steal|criminal|scam|con artist`,
		"hostile_conduct":       `pound|slam|aggressive|intimidating|hostile`,
		"communication_refusal": `only speak to|only talk to|refuse to speak|hanging up|hung up on`,
	}
}

type rule struct {
	tag     string
	pattern *regexp.Regexp
}

// Engine is a stateless matcher over both indicator families. It is safe
// for concurrent use.
type Engine struct {
	special            []rule
	excessivelySpecial []rule
}

// NewEngine compiles both lexicons. A nil lexicon uses the corresponding
// default.
func NewEngine(special, excessivelySpecial Lexicon) (*Engine, error) {
	if special == nil {
		special = DefaultSpecialLexicon()
	}
	if excessivelySpecial == nil {
		excessivelySpecial = DefaultExcessivelySpecialLexicon()
	}

	specialRules, err := compile(special)
	if err != nil {
		return nil, fmt.Errorf("special lexicon: %w", err)
	}

	eSpecialRules, err := compile(excessivelySpecial)
	if err != nil {
		return nil, fmt.Errorf("excessively-special lexicon: %w", err)
	}

	return &Engine{special: specialRules, excessivelySpecial: eSpecialRules}, nil
}

func compile(lexicon Lexicon) ([]rule, error) {
	rules := make([]rule, 0, len(lexicon))
	for tag, pattern := range lexicon {
		re, err := regexp.Compile(`(?i)\b(?:` + pattern + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("tag %s: %w", tag, err)
		}
		rules = append(rules, rule{tag: tag, pattern: re})
	}

	// Deterministic scan order regardless of map iteration.
	sort.Slice(rules, func(i, j int) bool { return rules[i].tag < rules[j].tag })
	return rules, nil
}

// Scan matches text against both families independently and returns every
// matched tag with the fragment that triggered it.
func (e *Engine) Scan(text string) MatchSet {
	var matches MatchSet
	matches = append(matches, scan(e.special, FamilySpecial, text)...)
	matches = append(matches, scan(e.excessivelySpecial, FamilyExcessivelySpecial, text)...)
	return matches
}

func scan(rules []rule, family Family, text string) []Match {
	var matches []Match
	for _, r := range rules {
		if fragment := r.pattern.FindString(text); fragment != "" {
			matches = append(matches, Match{
				Family:      family,
				Tag:         r.tag,
				MatchedText: fragment,
			})
		}
	}
	return matches
}
