package report

import (
	"bufio"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Section labels of the plain-text report that get heading treatment in
// the PDF rendering.
var pdfHeadings = map[string]bool{
	"KOP:":          true,
	"INTRO:":        true,
	"BODY:":         true,
	"SIGNALEN:":     true,
	"BRON:":         true,
	ContactHeading: true,
}

// WritePDF renders a composed text report as a simple A4 PDF. The layout is
// intentionally minimal: section labels in bold, body text as wrapped
// paragraphs.
func WritePDF(content string, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" {
			pdf.Ln(5)
			continue
		}
		if pdfHeadings[line] {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, tr(line), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
	return pdf.Output(w)
}
