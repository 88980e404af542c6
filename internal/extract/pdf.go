package extract

import (
	"bytes"
	"fmt"
	"strings"

	pdfreader "github.com/ledongthuc/pdf"
)

// fromPDF extracts plain text page by page. Pages without a text layer
// contribute nothing; the caller decides whether the total yield is enough.
func fromPDF(b []byte) (string, error) {
	r, err := pdfreader.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			sb.WriteString(text)
			sb.WriteString("\n\n")
		}
	}
	return sb.String(), nil
}
