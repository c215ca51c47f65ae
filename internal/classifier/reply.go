package classifier

import (
	"bufio"
	"strings"
)

// Reply holds the fixed field vocabulary of an oracle reply. Fields the
// oracle omitted carry the NotSpecified placeholder.
type Reply struct {
	Classification       string
	NoticeSent           string
	FirmFault            string
	FirmFaultExplanation string
	CurrentStatus        string
	Recommendation       string
	Reasoning            string
	KeyEvidence          string
}

// replyLabels lists the recognized field labels. Order matters: longer
// labels precede their prefixes so FIRM FAULT EXPLANATION is never consumed
// as FIRM FAULT.
var replyLabels = []string{
	"FIRM FAULT EXPLANATION",
	"CLASSIFICATION",
	"NOTICE SENT",
	"FIRM FAULT",
	"CURRENT STATUS",
	"RECOMMENDATION",
	"REASONING",
	"KEY EVIDENCE",
}

// ParseReply scans the oracle's free-text reply for recognized field labels
// and captures each field's text up to the next label or end of text. The
// scan is a small state machine over lines: tolerant of reordering,
// omission, extra prose, markdown decoration, and label casing. A missing
// field yields the NotSpecified placeholder, never an error. Only a reply
// containing no recognized label at all returns ErrMalformedReply.
func ParseReply(text string) (Reply, error) {
	fields := make(map[string]string, len(replyLabels))

	var current string
	var buf strings.Builder

	flush := func() {
		if current == "" {
			return
		}
		if _, exists := fields[current]; !exists {
			fields[current] = strings.TrimSpace(buf.String())
		}
		current = ""
		buf.Reset()
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if label, rest, ok := matchLabel(line); ok {
			flush()
			current = label
			buf.WriteString(rest)
			continue
		}

		if current != "" {
			buf.WriteString("\n")
			buf.WriteString(line)
		}
	}
	flush()

	if len(fields) == 0 {
		return Reply{}, ErrMalformedReply
	}

	get := func(label string) string {
		if v, ok := fields[label]; ok && v != "" {
			return v
		}
		return NotSpecified
	}

	return Reply{
		Classification:       get("CLASSIFICATION"),
		NoticeSent:           get("NOTICE SENT"),
		FirmFault:            get("FIRM FAULT"),
		FirmFaultExplanation: get("FIRM FAULT EXPLANATION"),
		CurrentStatus:        get("CURRENT STATUS"),
		Recommendation:       get("RECOMMENDATION"),
		Reasoning:            get("REASONING"),
		KeyEvidence:          get("KEY EVIDENCE"),
	}, nil
}

// matchLabel reports whether a line opens a recognized field. Leading list
// markers and markdown emphasis are stripped before matching; the label
// itself is matched case-insensitively and must be followed by a colon.
func matchLabel(line string) (label, rest string, ok bool) {
	trimmed := strings.TrimLeft(strings.TrimSpace(line), "*-#> ")
	upper := strings.ToUpper(trimmed)

	for _, candidate := range replyLabels {
		if !strings.HasPrefix(upper, candidate) {
			continue
		}

		after := strings.TrimLeft(trimmed[len(candidate):], "* ")
		if !strings.HasPrefix(after, ":") {
			continue
		}

		value := strings.TrimSpace(strings.TrimPrefix(after, ":"))
		value = strings.Trim(value, "*")
		return candidate, strings.TrimSpace(stripBrackets(value)), true
	}

	return "", "", false
}

// stripBrackets removes a single enclosing [ ] pair, which some replies
// carry over from the output template.
func stripBrackets(s string) string {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
