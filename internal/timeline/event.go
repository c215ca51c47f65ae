// Package timeline turns raw activity text into an ordered sequence of dated
// events. It provides date parsing over a fixed grammar list, multi-pattern
// segmentation, and salience scoring for bounded summary selection.
package timeline

import "time"

// Event is a single dated entry extracted from activity text. Events are
// immutable after segmentation.
//
// When the date token fails every supported grammar the event is retained
// rather than dropped: Flagged is true, DateRaw holds the verbatim token,
// and Date is the zero time. Flagged events sort before all dated events in
// their original document order so review tooling can find them.
type Event struct {
	Date           time.Time `json:"date"`
	DateRaw        string    `json:"date_raw,omitempty"`
	Flagged        bool      `json:"flagged,omitempty"`
	Body           string    `json:"body"`
	OriginalLength int       `json:"original_length"`

	// offset is the byte position of the entry in the source text,
	// used to keep flagged events in document order.
	offset int
}

// DateLabel returns the display form of the event date: the formatted
// calendar date for parsed events, the verbatim token for flagged ones.
func (e Event) DateLabel() string {
	if e.Flagged {
		return e.DateRaw
	}
	return e.Date.Format("2006-01-02")
}
