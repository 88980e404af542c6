package content

import (
	"strings"
	"testing"
)

func TestHasStrongClaims(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"het beste resultaat ooit", true},
		{"een Uniek concept", true},
		{"nummer 1 in de regio", true},
		{"nummer  1 in de regio", true},
		{"een nieuw buurthuis in de wijk", false},
		{"besteld en geleverd", false},
	}
	for _, c := range cases {
		if got := HasStrongClaims(c.text); got != c.want {
			t.Fatalf("%q: got %v", c.text, got)
		}
	}
}

func TestHasRelativeTime(t *testing.T) {
	if !HasRelativeTime("de opening is morgen om tien uur") {
		t.Fatalf("morgen not flagged")
	}
	if !HasRelativeTime("Gisteren werd het plan bekendgemaakt") {
		t.Fatalf("gisteren not flagged")
	}
	if HasRelativeTime("op 12 mei 2025 om tien uur") {
		t.Fatalf("absolute date flagged")
	}
}

func TestContactTail_EmailInTail(t *testing.T) {
	text := "Persbericht over de opening.\n\nMeer details volgen.\n\npers@gemeente.nl"
	tail := ContactTail(text)
	if tail == "" {
		t.Fatalf("expected contact tail")
	}
	if !strings.Contains(tail, "pers@gemeente.nl") {
		t.Fatalf("tail missing address: %q", tail)
	}
}

func TestContactTail_ContactToken(t *testing.T) {
	text := "Persbericht.\n\nNoot voor de redactie: bel de woordvoerder."
	if ContactTail(text) == "" {
		t.Fatalf("expected contact tail")
	}
}

func TestContactTail_NoContactDetails(t *testing.T) {
	if tail := ContactTail("alleen inhoud, geen gegevens"); tail != "" {
		t.Fatalf("unexpected tail %q", tail)
	}
}

func TestContactTail_OnlySearchesFinalLines(t *testing.T) {
	// An address far above the 60-line window must not trigger.
	text := "Contact: pers@gemeente.nl\n" + strings.Repeat("tussenregel zonder gegevens\n", 70) + "slotregel"
	if tail := ContactTail(text); tail != "" {
		t.Fatalf("address outside window still matched: %q", tail)
	}
}
