package report

import (
	"strings"
	"testing"

	"github.com/torstenfaruhn/persberichten-tool/internal/draft"
	"github.com/torstenfaruhn/persberichten-tool/internal/signal"
)

func TestCompose_BlockOrder(t *testing.T) {
	d := draft.Draft{Headline: "Kop", Intro: "Intro", Body: "Body"}
	out := Compose(d, []signal.Signal{signal.StrongClaim()})

	order := []string{"KOP:\nKop", "INTRO:\nIntro", "BODY:\nBody", "SIGNALEN:\n- W004:", "BRON:\n" + SourceLine}
	pos := -1
	for _, marker := range order {
		i := strings.Index(out, marker)
		if i < 0 {
			t.Fatalf("missing %q in:\n%s", marker, out)
		}
		if i < pos {
			t.Fatalf("%q out of order in:\n%s", marker, out)
		}
		pos = i
	}
}

func TestCompose_NoSignalsPlaceholder(t *testing.T) {
	out := Compose(draft.Draft{Headline: "K", Intro: "I", Body: "B"}, nil)
	if !strings.Contains(out, "- (geen signalen)") {
		t.Fatalf("placeholder missing:\n%s", out)
	}
}

func TestCompose_SignalLineFormat(t *testing.T) {
	out := Compose(draft.Draft{Headline: "K", Intro: "I", Body: "B"},
		[]signal.Signal{signal.RelativeTime(), signal.ContactInfo()})
	if !strings.Contains(out, "- W008: ") || !strings.Contains(out, "- W009: ") {
		t.Fatalf("signal lines malformed:\n%s", out)
	}
}

func TestAppendContact(t *testing.T) {
	body := AppendContact("Body", "Tel. 043-1234567\npers@gemeente.nl")
	if !strings.Contains(body, ContactHeading) {
		t.Fatalf("heading missing: %q", body)
	}
	if !strings.HasPrefix(body, "Body\n\n") {
		t.Fatalf("body prefix lost: %q", body)
	}
}

func TestAppendContact_EmptyContactNoop(t *testing.T) {
	if got := AppendContact("Body", "  \n "); got != "Body" {
		t.Fatalf("got %q", got)
	}
}
