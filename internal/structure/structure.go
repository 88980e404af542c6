// Package structure derives a headline/intro/body draft deterministically,
// without any external call. It is the fallback path when no external
// rewriter is configured or an external attempt fails.
package structure

import (
	"regexp"
	"strings"

	"github.com/torstenfaruhn/persberichten-tool/internal/draft"
)

const (
	headlineMaxChars = 150
	introMaxChars    = 650
)

var paragraphRe = regexp.MustCompile(`\n[ \t]*\n`)

// FromText structures neutralized, normalized text into a draft. It never
// fails: for non-empty input every field of the result is non-empty.
func FromText(text string) draft.Draft {
	headline := strings.TrimSpace(truncate(firstNonBlankLine(text), headlineMaxChars))

	paras := paragraphs(text)
	var intro, body string
	switch {
	case len(paras) == 0:
		// unreachable for non-empty input; keep the zero value explicit
	case len(paras) == 1:
		r := []rune(paras[0])
		cut := len(r)
		if cut > introMaxChars {
			cut = introMaxChars
		}
		intro = strings.TrimSpace(string(r[:cut]))
		body = strings.TrimSpace(string(r[cut:]))
	case strings.HasPrefix(paras[0], headline):
		// The first paragraph repeats the headline; start the intro at the
		// second paragraph.
		intro = strings.TrimSpace(truncate(paras[1], introMaxChars))
		if len(paras) > 2 {
			body = strings.TrimSpace(strings.Join(paras[2:], "\n\n"))
		} else {
			body = strings.TrimSpace(strings.Join(paras[1:], "\n\n"))
		}
	default:
		intro = strings.TrimSpace(truncate(paras[0], introMaxChars))
		body = strings.TrimSpace(strings.Join(paras[1:], "\n\n"))
	}

	// A single short paragraph leaves no remainder after the intro cut;
	// reuse the intro so the non-empty invariant holds.
	if body == "" {
		body = intro
	}
	return draft.Draft{Headline: headline, Intro: intro, Body: body, Source: draft.SourceFallback}
}

func paragraphs(text string) []string {
	parts := paragraphRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstNonBlankLine(text string) string {
	for _, ln := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			return t
		}
	}
	return ""
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
