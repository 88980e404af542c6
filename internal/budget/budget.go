// Package budget enforces the length policy: headline bands and the total
// intro+body budget for the size class derived from the source length.
package budget

import (
	"unicode/utf8"

	"github.com/torstenfaruhn/persberichten-tool/internal/draft"
	"github.com/torstenfaruhn/persberichten-tool/internal/signal"
)

// Class buckets a source document by length and selects the target band
// for the publishable intro+body total. Classes are derived, never stored.
type Class string

const (
	ClassXS Class = "XS"
	ClassS  Class = "S"
)

// classThreshold separates XS from S on source character count.
const classThreshold = 2500

// Headline length band in characters.
const (
	headlineMin = 100
	headlineMax = 150
)

// Band is the inclusive target range for the intro+body character total.
type Band struct {
	Low  int
	High int
}

var bands = map[Class]Band{
	ClassXS: {Low: 950, High: 1150},
	ClassS:  {Low: 1750, High: 1950},
}

// ClassFor derives the size class from the original source length.
func ClassFor(sourceChars int) Class {
	if sourceChars < classThreshold {
		return ClassXS
	}
	return ClassS
}

// Band returns the target range for the class.
func (c Class) Band() Band {
	return bands[c]
}

// SoftCeiling allows up to 10% over the band's high bound before a length
// warning is raised.
func (b Band) SoftCeiling() int {
	return int(float64(b.High) * 1.10)
}

// Enforce checks the final draft against the headline band and the
// total-length budget for the source's size class, returning the resulting
// warnings in display order. Totals exactly at the band's low bound, or up
// to the soft ceiling above its high bound, produce no warning.
func Enforce(d draft.Draft, sourceChars int) []signal.Signal {
	var out []signal.Signal

	headline := utf8.RuneCountInString(d.Headline)
	if headline < headlineMin {
		out = append(out, signal.HeadlineTooShort())
	}
	if headline > headlineMax {
		out = append(out, signal.HeadlineTooLong())
	}

	class := ClassFor(sourceChars)
	band := class.Band()
	total := utf8.RuneCountInString(d.Intro) + utf8.RuneCountInString(d.Body)
	switch {
	case total < band.Low:
		out = append(out, signal.TotalTooShort(string(class), total, band.Low, band.High))
	case total > band.SoftCeiling():
		out = append(out, signal.TotalTooLong(string(class), total, band.Low, band.High, band.SoftCeiling()))
	}
	return out
}
