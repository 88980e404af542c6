// Package content flags quality issues in press-release text that do not
// block processing: marketing claims, relative time expressions, and
// trailing contact blocks.
package content

import (
	"regexp"
	"strings"
)

// contactTailLines bounds how far from the end of the document a contact
// block is searched for.
const contactTailLines = 60

var (
	strongClaimRe  = regexp.MustCompile(`(?i)\b(uniek|beste|veiligst|revolutionair|nummer\s*1)\b`)
	relativeDayRe  = regexp.MustCompile(`(?i)\b(gisteren|vandaag|morgen|vanavond|vanochtend|gisteravond)\b`)
	emailRe        = regexp.MustCompile(`@[A-Za-z0-9._%+-]+\.[A-Za-z]{2,}`)
	contactTokenRe = regexp.MustCompile(`(?i)\b(Tel\.?|Telefoon|Contact|Voor meer informatie|Noot voor de redactie)\b`)
)

// HasStrongClaims reports absolute or superlative marketing terms.
func HasStrongClaims(text string) bool {
	return strongClaimRe.MatchString(text)
}

// HasRelativeTime reports relative-day adverbs. A rewrite must convert
// these to absolute dates, which only an external check can verify.
func HasRelativeTime(text string) bool {
	return relativeDayRe.MatchString(text)
}

// ContactTail returns the trailing contact block, trimmed, when the final
// lines of the document contain an email address or a contact token. It
// returns the empty string when no contact details are present. The block
// must never appear in a publishable body; callers append it under a
// clearly marked non-publication heading.
func ContactTail(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > contactTailLines {
		lines = lines[len(lines)-contactTailLines:]
	}
	tail := strings.Join(lines, "\n")
	if emailRe.MatchString(tail) || contactTokenRe.MatchString(tail) {
		return strings.TrimSpace(tail)
	}
	return ""
}
