// Package report renders the ordered classification results into the
// assessment deliverable. The core's only contract toward rendering is the
// result field set; the xlsx implementation lives behind the Renderer
// interface.
package report

import "github.com/clientops/auditor/internal/classifier"

// Renderer writes a full ordered result sequence to an output path.
type Renderer interface {
	Render(results []classifier.Result, path string) error
}

// Tally counts results by a derived label. Used for the summary sheet and
// the CLI recap.
func Tally(results []classifier.Result, label func(classifier.Result) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range results {
		counts[label(r)]++
	}
	return counts
}
