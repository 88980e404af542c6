package report

import (
	"bytes"
	"testing"

	"github.com/torstenfaruhn/persberichten-tool/internal/draft"
	"github.com/torstenfaruhn/persberichten-tool/internal/signal"
)

func TestWritePDF(t *testing.T) {
	content := Compose(draft.Draft{Headline: "Kop mét accent", Intro: "Intro", Body: "Body"},
		[]signal.Signal{signal.ContactInfo()})
	var buf bytes.Buffer
	if err := WritePDF(content, &buf); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("not a pdf: %q", buf.Bytes()[:8])
	}
}
