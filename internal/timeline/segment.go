package timeline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/clientops/auditor/pkg/formatting"
)

// DefaultBodyLimit caps event body length in runes. The original length is
// retained on the event for diagnostics.
const DefaultBodyLimit = 500

// segmentPatterns are the candidate entry-header patterns, in priority
// order. A document may mix entry styles from different systems, so every
// pattern is applied to the same text rather than alternatively. Each
// pattern anchors at a line start and captures the date token; the body
// runs from the end of the header to the next header of the same pattern
// or end of text.
var segmentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^(\d{1,2}/\d{1,2}/\d{2,4})\s*[-|]\s*`),
	regexp.MustCompile(`(?m)^(\d{4}-\d{2}-\d{2})(?:\s+\d{1,2}:\d{2}\s*(?:[AP]M)?)?\s*`),
}

// Segmenter splits raw activity text into timeline events.
type Segmenter struct {
	bodyLimit int
}

// NewSegmenter creates a Segmenter with the given body cap in runes.
// A cap of zero or less falls back to DefaultBodyLimit.
func NewSegmenter(bodyLimit int) *Segmenter {
	if bodyLimit <= 0 {
		bodyLimit = DefaultBodyLimit
	}
	return &Segmenter{bodyLimit: bodyLimit}
}

// Segment extracts every entry matched by the candidate patterns and returns
// the events sorted ascending by parsed date. Entries whose date token fails
// every grammar are retained as flagged events and sort before all dated
// events in document order; an event is never silently dropped. Text with no
// entry headers yields an empty sequence.
func (s *Segmenter) Segment(raw string) []Event {
	var events []Event

	for _, pattern := range segmentPatterns {
		locs := pattern.FindAllStringSubmatchIndex(raw, -1)
		for i, loc := range locs {
			token := raw[loc[2]:loc[3]]

			bodyEnd := len(raw)
			if i+1 < len(locs) {
				bodyEnd = locs[i+1][0]
			}
			body := strings.TrimSpace(raw[loc[1]:bodyEnd])
			if body == "" {
				continue
			}

			ev := Event{
				Body:           formatting.Truncate(body, s.bodyLimit),
				OriginalLength: len([]rune(body)),
				offset:         loc[0],
			}

			date, err := ParseDate(token)
			if err != nil {
				ev.Flagged = true
				ev.DateRaw = token
			} else {
				ev.Date = date
			}

			events = append(events, ev)
		}
	}

	sortEvents(events)
	return events
}

// sortEvents orders flagged events first by document position, then dated
// events ascending by date with document position as the tiebreaker.
func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Flagged != b.Flagged {
			return a.Flagged
		}
		if a.Flagged {
			return a.offset < b.offset
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.offset < b.offset
	})
}
