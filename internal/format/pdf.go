package format

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfNumWidth  = 12.0
	pdfRowHeight = 7.0
)

// WritePDF renders tables to a single A4 document.
func WritePDF(w io.Writer, heading string, tables []Table) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(heading, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(heading))
	pdf.Ln(14)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	for _, t := range tables {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, tr(t.Title))
		pdf.Ln(10)

		if len(t.Rows) == 0 {
			pdf.SetFont("Arial", "I", 10)
			pdf.Cell(0, pdfRowHeight, EmptyTable)
			pdf.Ln(pdfRowHeight + 1)
		} else {
			colW := usable - pdfNumWidth
			if len(t.Columns) > 0 {
				colW /= float64(len(t.Columns))
			}
			widths := func(j int) float64 {
				if j == 0 {
					return pdfNumWidth
				}
				return colW
			}

			pdf.SetFont("Arial", "B", 10)
			pdf.SetFillColor(235, 235, 235)
			for j, h := range t.Header() {
				pdf.CellFormat(widths(j), pdfRowHeight, tr(h), "1", 0, "L", true, 0, "")
			}
			pdf.Ln(-1)

			pdf.SetFont("Arial", "", 10)
			for _, r := range t.Numbered() {
				for j, c := range r {
					pdf.CellFormat(widths(j), pdfRowHeight, tr(fitPDF(pdf, c, widths(j))), "1", 0, "L", false, 0, "")
				}
				pdf.Ln(-1)
			}
			pdf.Ln(2)
		}

		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, pdfRowHeight, t.Total())
		pdf.Ln(pdfRowHeight + 5)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// fitPDF shortens s with an ellipsis until it fits in a cell of width w.
func fitPDF(pdf *gofpdf.Fpdf, s string, w float64) string {
	const pad = 2.0
	if pdf.GetStringWidth(s) <= w-pad {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > w-pad {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
