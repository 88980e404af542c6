// Package report composes the human-readable output of a processing run.
// The plain-text format is a stable external contract consumed by the
// download/export endpoints.
package report

import (
	"strings"

	"github.com/torstenfaruhn/persberichten-tool/internal/draft"
	"github.com/torstenfaruhn/persberichten-tool/internal/signal"
)

// SourceLine is the fixed attribution trailer of every report.
const SourceLine = "Bron: aangeleverd persbericht"

// ContactHeading marks the non-publication contact block appended to a body.
const ContactHeading = "CONTACT (niet voor publicatie):"

// Compose renders the report: headline block, intro block, body block
// (including any appended contact block), a SIGNALEN section listing every
// signal as "- CODE: message" (or a placeholder when empty), and the
// source-attribution line.
func Compose(d draft.Draft, signals []signal.Signal) string {
	var sb strings.Builder
	sb.WriteString("KOP:\n")
	sb.WriteString(d.Headline)
	sb.WriteString("\n\nINTRO:\n")
	sb.WriteString(d.Intro)
	sb.WriteString("\n\nBODY:\n")
	sb.WriteString(d.Body)
	sb.WriteString("\n\nSIGNALEN:\n")
	if len(signals) == 0 {
		sb.WriteString("- (geen signalen)")
	} else {
		lines := make([]string, 0, len(signals))
		for _, s := range signals {
			lines = append(lines, "- "+s.Code+": "+s.Message)
		}
		sb.WriteString(strings.Join(lines, "\n"))
	}
	sb.WriteString("\n\nBRON:\n")
	sb.WriteString(SourceLine)
	sb.WriteString("\n")
	return sb.String()
}

// AppendContact augments a body with the non-publication contact block.
func AppendContact(body, contact string) string {
	if strings.TrimSpace(contact) == "" {
		return body
	}
	return body + "\n\n" + ContactHeading + "\n" + strings.TrimSpace(contact)
}
