package rewrite

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultStyleGuideMaxChars bounds the style blob so prompts stay small.
const DefaultStyleGuideMaxChars = 20000

// LoadStyleGuide concatenates plain-text style guideline files into one
// bounded blob for the system prompt. Files that are missing or unreadable
// are skipped so the tool remains usable without stylebooks.
func LoadStyleGuide(paths []string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultStyleGuideMaxChars
	}
	var chunks []string
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			log.Warn().Str("path", p).Err(err).Msg("style guide file skipped")
			continue
		}
		if txt := strings.TrimSpace(string(b)); txt != "" {
			chunks = append(chunks, "["+p+"]\n"+txt)
		}
	}
	blob := strings.TrimSpace(strings.Join(chunks, "\n\n"))
	if r := []rune(blob); len(r) > maxChars {
		blob = string(r[:maxChars]) + "\n\n[...ingekort...]"
	}
	return blob
}
