package timeline

import (
	"fmt"
	"strings"
	"time"
)

// dateGrammars is the fixed ordered list of supported date layouts. The
// first full-token match wins. Two-digit years resolve through Go's fixed
// pivot (69-99 → 19xx, 00-68 → 20xx), so "3/4/24" and "3/4/2024" parse to
// the same calendar date.
var dateGrammars = []string{
	"1/2/2006",   // month/day/year, 4-digit year
	"1/2/06",     // month/day/year, 2-digit year
	"2006-01-02", // ISO year-month-day
	"02-01-2006", // day-month-year
}

// ParseDate attempts each supported grammar against the full token and
// returns the first match. Partial matches fail: a valid date embedded in a
// longer token is rejected, so body text can never produce a false positive.
// Parsing is timezone-naive and numeric only.
func ParseDate(token string) (time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, fmt.Errorf("%w: empty token", ErrDateParse)
	}

	for _, layout := range dateGrammars {
		if t, err := time.Parse(layout, token); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, token)
}
