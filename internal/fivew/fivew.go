// Package fivew detects the presence of the journalistic 5W+H minimum
// (wie, wat, waar, wanneer, waarom, hoe) in Dutch press-release text. All
// detection is shallow and pattern based: a non-matching dimension simply
// counts as absent.
package fivew

import (
	"fmt"
	"regexp"

	"github.com/torstenfaruhn/persberichten-tool/internal/signal"
)

var (
	// Wie: organizational-entity nouns or a capitalized two-token name.
	orgRe  = regexp.MustCompile(`(?i)\b(organisatie|bedrijf|stichting|vereniging|gemeente|politie|universiteit)\b`)
	nameRe = regexp.MustCompile(`\b[A-ZÀ-Þ][a-zà-ÿ]+ [A-ZÀ-Þ][a-zà-ÿ]+\b`)

	// Wat: announcement action verbs.
	actionRe = regexp.MustCompile(`(?i)\b(opent|start|lanceert|introduceert|organiseert|houdt|presenteert|maakt bekend|meldt|sluit|bouwt)\b`)

	// Waar: regional place names or locative prepositions.
	placeRe    = regexp.MustCompile(`\b(Maastricht|Heerlen|Sittard|Roermond|Venlo|Weert|Kerkrade|Valkenburg|Geleen|Landgraaf|Echt|Susteren)\b`)
	locativeRe = regexp.MustCompile(`(?i)\b(in|op|bij)\b`)

	// Wanneer: absolute date (day, month name, year) or a weekday name.
	absDateRe = regexp.MustCompile(`\b\d{1,2}\s+[A-Za-zÀ-ÿ]+\s+\d{4}\b`)
	weekdayRe = regexp.MustCompile(`(?i)\b(maandag|dinsdag|woensdag|donderdag|vrijdag|zaterdag|zondag)\b`)

	// Waarom: causal connectives.
	causalRe = regexp.MustCompile(`(?i)\b(omdat|zodat|vanwege|met als doel)\b`)

	// Hoe: instrumental connectives.
	instrumentalRe = regexp.MustCompile(`(?i)\b(door|via|met behulp van|op deze manier)\b`)
)

// Presence records which journalistic dimensions were detected.
type Presence struct {
	Wie     bool
	Wat     bool
	Waar    bool
	Wanneer bool
	Waarom  bool
	Hoe     bool
}

// Analyze evaluates each dimension independently over normalized text.
func Analyze(text string) Presence {
	return Presence{
		Wie:     orgRe.MatchString(text) || nameRe.MatchString(text),
		Wat:     actionRe.MatchString(text),
		Waar:    placeRe.MatchString(text) || locativeRe.MatchString(text),
		Wanneer: absDateRe.MatchString(text) || weekdayRe.MatchString(text),
		Waarom:  causalRe.MatchString(text),
		Hoe:     instrumentalRe.MatchString(text),
	}
}

// MissingGateCount counts absent dimensions among the five hard-gate
// dimensions. Hoe is excluded from the gate: its absence only warns.
func (p Presence) MissingGateCount() int {
	n := 0
	for _, present := range []bool{p.Wie, p.Wat, p.Waar, p.Wanneer, p.Waarom} {
		if !present {
			n++
		}
	}
	return n
}

// GatePasses reports whether the document meets the 5W minimum: fewer than
// two of the five gate dimensions absent.
func (p Presence) GatePasses() bool {
	return p.MissingGateCount() < 2
}

// Warnings returns one warning per absent dimension, in the fixed
// wie/wat/waar/wanneer/waarom/hoe display order. The caller only uses these
// when the gate passes; on a gate failure the fatal signal stands alone.
func (p Presence) Warnings() []signal.Signal {
	var out []signal.Signal
	if !p.Wie {
		out = append(out, signal.MissingWho())
	}
	if !p.Wat {
		out = append(out, signal.MissingWhat())
	}
	if !p.Waar {
		out = append(out, signal.MissingWhere())
	}
	if !p.Wanneer {
		out = append(out, signal.MissingWhen())
	}
	if !p.Waarom {
		out = append(out, signal.MissingWhy())
	}
	if !p.Hoe {
		out = append(out, signal.MissingHow())
	}
	return out
}

// String renders the presence map for diagnostic metadata.
func (p Presence) String() string {
	return fmt.Sprintf("wie=%t wat=%t waar=%t wanneer=%t waarom=%t hoe=%t",
		p.Wie, p.Wat, p.Waar, p.Wanneer, p.Waarom, p.Hoe)
}
