// Package normalize canonicalizes raw extracted text so every downstream
// heuristic sees the same line and paragraph structure regardless of the
// extraction source.
package normalize

import (
	"regexp"
	"strings"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// Text applies, in order: line-break unification to LF, per-line trailing
// whitespace removal, collapsing runs of three or more newlines to a single
// blank line, and trimming of the whole text. No other content is altered.
// Idempotent: Text(Text(s)) == Text(s).
func Text(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t")
	}
	s = strings.Join(lines, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
