// Package cases builds immutable case records from already-extracted
// activity text: case name, optional metadata fields, and the segmented
// timeline.
package cases

import (
	"github.com/google/uuid"

	"github.com/clientops/auditor/internal/timeline"
)

// Record is one client case assembled from a single source document.
// It is immutable once extraction completes.
type Record struct {
	ID       uuid.UUID         `json:"id"`
	CaseName string            `json:"case_name"`
	Source   string            `json:"source"`
	Metadata map[string]string `json:"metadata"`
	Timeline []timeline.Event  `json:"timeline"`
	RawText  string            `json:"raw_text"`
}
