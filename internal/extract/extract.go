// Package extract turns uploaded files into plain text for the pipeline.
// The detected kind travels along as diagnostic metadata only; it never
// changes validation thresholds, except that the outer layer applies its
// own minimum-yield gate to PDF extractions.
package extract

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnsupported reports a file type the tool cannot read.
var ErrUnsupported = errors.New("unsupported file type")

// PDFMinYield is the minimum number of extracted characters below which a
// PDF is treated as a scan without usable text.
const PDFMinYield = 800

// Document is extracted text plus the source kind for diagnostics.
type Document struct {
	Text string
	Kind string // txt, docx, pdf, html
}

// FromUpload dispatches on the file extension of an uploaded document.
func FromUpload(filename string, data []byte) (Document, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return Document{Text: fromTXT(data), Kind: "txt"}, nil
	case ".docx":
		text, err := fromDOCX(data)
		if err != nil {
			return Document{}, err
		}
		return Document{Text: text, Kind: "docx"}, nil
	case ".pdf":
		text, err := fromPDF(data)
		if err != nil {
			return Document{}, err
		}
		return Document{Text: text, Kind: "pdf"}, nil
	case ".html", ".htm":
		return Document{Text: fromHTML(data), Kind: "html"}, nil
	default:
		return Document{}, ErrUnsupported
	}
}

// fromTXT decodes UTF-8 text, falling back to ISO-8859-1 for files saved
// with a legacy Western European encoding.
func fromTXT(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}
