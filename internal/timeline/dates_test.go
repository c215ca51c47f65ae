package timeline_test

import (
	"errors"
	"testing"
	"time"

	"github.com/clientops/auditor/internal/timeline"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected time.Time
	}{
		{"slash four digit year", "3/15/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"slash two digit year", "3/15/24", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"iso", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"day month year", "15-03-2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"single digit month and day", "1/2/2024", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", " 3/15/2024 ", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timeline.ParseDate(tt.token)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseDateTwoDigitYearPivot(t *testing.T) {
	got, err := timeline.ParseDate("3/4/24")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	full, err := timeline.ParseDate("3/4/2024")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if !got.Equal(full) {
		t.Errorf("two-digit year %v should equal four-digit year %v", got, full)
	}
}

func TestParseDateRejects(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"prose", "sometime in March"},
		{"embedded date", "on 3/15/2024 the client called"},
		{"month name", "March 15, 2024"},
		{"invalid month", "13/45/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := timeline.ParseDate(tt.token); !errors.Is(err, timeline.ErrDateParse) {
				t.Errorf("got %v, want ErrDateParse", err)
			}
		})
	}
}
