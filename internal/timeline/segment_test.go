package timeline_test

import (
	"strings"
	"testing"
	"time"

	"github.com/clientops/auditor/internal/timeline"
)

func TestSegmentSlashEntries(t *testing.T) {
	raw := strings.Join([]string{
		"3/15/2024 - Client called about case status.",
		"3/10/2024 - Initial consultation completed.",
		"3/20/2024 | Client emailed additional documents.",
	}, "\n")

	events := timeline.NewSegmenter(0).Segment(raw)
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	expected := []struct {
		date time.Time
		body string
	}{
		{time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "Initial consultation completed."},
		{time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "Client called about case status."},
		{time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), "Client emailed additional documents."},
	}

	for i, want := range expected {
		if !events[i].Date.Equal(want.date) {
			t.Errorf("event %d: got date %v, want %v", i, events[i].Date, want.date)
		}
		if events[i].Body != want.body {
			t.Errorf("event %d: got body %q, want %q", i, events[i].Body, want.body)
		}
	}
}

func TestSegmentISOEntries(t *testing.T) {
	raw := strings.Join([]string{
		"2024-03-15 10:30 AM Client left a voicemail.",
		"2024-03-16 Client signed the agreement.",
	}, "\n")

	events := timeline.NewSegmenter(0).Segment(raw)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	if events[0].Body != "Client left a voicemail." {
		t.Errorf("got body %q, timestamp should be stripped", events[0].Body)
	}
	if events[1].Body != "Client signed the agreement." {
		t.Errorf("got body %q, want %q", events[1].Body, "Client signed the agreement.")
	}
}

func TestSegmentMultilineBody(t *testing.T) {
	raw := "3/15/2024 - Client called.\nLeft detailed message.\nRequested callback.\n3/16/2024 - Returned call."

	events := timeline.NewSegmenter(0).Segment(raw)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	if !strings.Contains(events[0].Body, "Requested callback.") {
		t.Errorf("body should span to next entry header, got %q", events[0].Body)
	}
	if strings.Contains(events[0].Body, "Returned call.") {
		t.Errorf("body should stop at next entry header, got %q", events[0].Body)
	}
}

func TestSegmentFlaggedEvents(t *testing.T) {
	raw := strings.Join([]string{
		"3/15/2024 - Dated entry.",
		"99/99/99 - Unparsable entry.",
		"3/10/2024 - Earlier dated entry.",
	}, "\n")

	events := timeline.NewSegmenter(0).Segment(raw)
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	if !events[0].Flagged {
		t.Fatal("flagged event should sort before dated events")
	}
	if events[0].DateRaw != "99/99/99" {
		t.Errorf("got date_raw %q, want verbatim token", events[0].DateRaw)
	}
	if events[0].DateLabel() != "99/99/99" {
		t.Errorf("got label %q, want verbatim token", events[0].DateLabel())
	}
	if events[1].Flagged || events[2].Flagged {
		t.Error("dated events should not be flagged")
	}
	if !events[1].Date.Before(events[2].Date) {
		t.Error("dated events should sort ascending")
	}
}

func TestSegmentBodyLimit(t *testing.T) {
	body := strings.Repeat("x", 50)
	events := timeline.NewSegmenter(10).Segment("3/15/2024 - " + body)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	if got := len([]rune(events[0].Body)); got != 10 {
		t.Errorf("got body length %d, want 10", got)
	}
	if events[0].OriginalLength != 50 {
		t.Errorf("got original length %d, want 50", events[0].OriginalLength)
	}
}

func TestSegmentNoEntries(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"prose only", "General case notes without any dated entries."},
		{"date without separator", "3/15/2024 no separator here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if events := timeline.NewSegmenter(0).Segment(tt.raw); len(events) != 0 {
				t.Errorf("got %d events, want 0", len(events))
			}
		})
	}
}

func TestSegmentSkipsEmptyBody(t *testing.T) {
	events := timeline.NewSegmenter(0).Segment("3/15/2024 -   \n3/16/2024 - Real entry.")
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Body != "Real entry." {
		t.Errorf("got body %q, want %q", events[0].Body, "Real entry.")
	}
}
