package classifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/clientops/auditor/internal/cases"
	"github.com/clientops/auditor/internal/timeline"
	"github.com/clientops/auditor/pkg/formatting"
)

// BuildSummary renders a bounded textual case summary from metadata and the
// selected salient events. The result is capped at budget runes to respect
// the oracle's input limits; events render in the order given, which for a
// salience-ranked selection means a budget cut loses the lowest-scoring
// tail first.
func BuildSummary(rec cases.Record, events []timeline.Event, budget int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Case Name: %s\n", rec.CaseName)
	fmt.Fprintf(&sb, "Source: %s\n", rec.Source)

	sb.WriteString("\nMetadata:\n")
	if len(rec.Metadata) == 0 {
		sb.WriteString("  No metadata extracted\n")
	} else {
		keys := make([]string, 0, len(rec.Metadata))
		for k := range rec.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "  - %s: %s\n", k, rec.Metadata[k])
		}
	}

	sb.WriteString("\nTimeline & activities (key events):\n")
	if len(events) == 0 {
		sb.WriteString("No timeline events extracted\n")
	} else {
		for _, e := range events {
			fmt.Fprintf(&sb, "\nDate: %s\n%s\n", e.DateLabel(), e.Body)
		}
	}

	return formatting.Truncate(sb.String(), budget)
}
