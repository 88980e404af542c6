// Package neutralize rewrites known marketing vocabulary to neutral
// synonyms before deterministic structuring. When an external rewrite
// succeeds this step is skipped: the external system neutralizes tone
// itself.
package neutralize

import "regexp"

// The token sets do not overlap, so the replacements are order-independent
// in practice; the fixed order exists for reproducibility.
var replacements = []struct {
	re   *regexp.Regexp
	with string
}{
	{regexp.MustCompile(`(?i)\bwereldleider\b`), "grote speler"},
	{regexp.MustCompile(`(?i)\bmarktleider\b`), "grote speler"},
	{regexp.MustCompile(`(?i)\binnovatief\b`), "nieuw"},
	{regexp.MustCompile(`(?i)\brevolutionair\b`), "nieuw"},
	{regexp.MustCompile(`(?i)\buniek\b`), "bijzonder"},
}

// Apply performs the fixed list of case-insensitive literal replacements.
func Apply(text string) string {
	out := text
	for _, r := range replacements {
		out = r.re.ReplaceAllString(out, r.with)
	}
	return out
}
