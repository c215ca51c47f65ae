package cases

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/clientops/auditor/internal/timeline"
)

// Case-name header patterns, tried in order. These cover the export styles
// seen in practice management activity dumps.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?mi)^Case:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?mi)^Client Name:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?mi)^Matter:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?mi)^(.+?)\s*-\s*Activities`),
}

// Metadata field patterns. Keys are optional; absence is not an error.
var metadataPatterns = map[string]*regexp.Regexp{
	"case_number": regexp.MustCompile(`(?i)Case\s*#?\s*:?\s*(\d+)`),
	"attorney":    regexp.MustCompile(`(?mi)^Attorney:\s*(.+?)\s*$`),
	"paralegal":   regexp.MustCompile(`(?mi)^Paralegal:\s*(.+?)\s*$`),
	"case_type":   regexp.MustCompile(`(?mi)^Case Type:\s*(.+?)\s*$`),
	"opened_date": regexp.MustCompile(`(?i)Opened:\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
	"status":      regexp.MustCompile(`(?mi)^Status:\s*(.+?)\s*$`),
}

// Extractor assembles case records from raw text blobs.
type Extractor struct {
	segmenter *timeline.Segmenter
}

// NewExtractor creates an Extractor using the given segmenter for timelines.
func NewExtractor(segmenter *timeline.Segmenter) *Extractor {
	return &Extractor{segmenter: segmenter}
}

// Extract builds a Record from a source name and its concatenated text.
// An empty blob produces a record with an empty timeline rather than an
// error, matching the text-source contract for unreadable pages.
func (e *Extractor) Extract(source, raw string) Record {
	return Record{
		ID:       uuid.New(),
		CaseName: extractName(source, raw),
		Source:   source,
		Metadata: extractMetadata(raw),
		Timeline: e.segmenter.Segment(raw),
		RawText:  raw,
	}
}

func extractName(source, raw string) string {
	for _, pattern := range namePatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	// Fallback: derive from the source filename.
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return strings.ReplaceAll(stem, "_", " ")
}

func extractMetadata(raw string) map[string]string {
	metadata := make(map[string]string)
	for key, pattern := range metadataPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			metadata[key] = strings.TrimSpace(m[1])
		}
	}
	return metadata
}
