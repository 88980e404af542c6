// Package multidoc guards against silently processing only the first of
// several press releases concatenated in one document.
package multidoc

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/torstenfaruhn/persberichten-tool/internal/signal"
)

// Scoring thresholds for the second section. A high score on a long second
// section is a hard stop; a middling score only warns, so press releases
// that merely carry a long quote block or appendix are not rejected.
const (
	fatalScore     = 4
	fatalMinChars  = 900
	headlineMaxLen = 160
	sentenceWindow = 500
)

var (
	separatorRe = regexp.MustCompile(`(?i)\n[ \t]*(?:-{3,}|—{3,}|\*{3,}|EINDE PERSBERICHT)[ \t]*\n`)
	datelineRe  = regexp.MustCompile(`(?m)^[A-ZÀ-ÿ][A-Za-zÀ-ÿ .'-]{2,40},[ \t]*\d{1,2}\s+[A-Za-zÀ-ÿ]+\s+\d{4}\s*[–-]`)
	sentenceRe  = regexp.MustCompile(`[.!?]\s+`)
	contactRe   = regexp.MustCompile(`(?i)\b(Contact|Voor meer informatie|Noot voor de redactie|Woordvoerder)\b`)
)

// SplitSections splits normalized text on explicit separator lines (runs of
// three or more dashes or asterisks, or the literal "EINDE PERSBERICHT"
// marker) into the ordered sequence of non-empty sections.
func SplitSections(text string) []string {
	parts := separatorRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Detect inspects the second section of a multi-section document and
// returns a fatal E007 signal when it scores like a complete press release,
// a W015 warning for borderline scores, or nothing. Documents without
// separator markers never produce a signal.
func Detect(text string) (fatal, warning *signal.Signal) {
	sections := SplitSections(text)
	if len(sections) < 2 {
		return nil, nil
	}
	second := sections[1]
	score := scoreSection(second)
	switch {
	case score >= fatalScore && utf8.RuneCountInString(second) >= fatalMinChars:
		s := signal.MultipleReleases()
		return &s, nil
	case score == 2 || score == 3:
		s := signal.PossibleSecondRelease()
		return nil, &s
	}
	return nil, nil
}

// scoreSection rates how much a section looks like a complete press release
// on its own by summing independent point values.
func scoreSection(section string) int {
	score := 0
	if datelineRe.MatchString(section) {
		score += 2
	}
	head := section
	if r := []rune(head); len(r) > sentenceWindow {
		head = string(r[:sentenceWindow])
	}
	sentences := 0
	for _, s := range sentenceRe.Split(head, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences >= 2 {
		score += 2
	}
	if first := firstNonBlankLine(section); first != "" && utf8.RuneCountInString(first) <= headlineMaxLen {
		score++
	}
	if contactRe.MatchString(section) {
		score++
	}
	return score
}

func firstNonBlankLine(s string) string {
	for _, ln := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			return t
		}
	}
	return ""
}
