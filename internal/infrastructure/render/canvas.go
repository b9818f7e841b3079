package render

import "github.com/jung-kurt/gofpdf"

// Canvas is the drawing surface blocks paint onto. Coordinates are in
// points with the origin at the top-left corner of the page. Text is
// positioned by its baseline.
type Canvas interface {
	SetFont(style TextStyle)
	TextWidth(s string) float64
	Text(x, y float64, s string)

	// Rect draws a rectangle. The style string follows the PDF
	// convention: "D" stroke, "F" fill, "FD" fill then stroke.
	Rect(x, y, w, h float64, style string)
	Line(x1, y1, x2, y2 float64)
	Image(path string, x, y, w, h float64)

	SetDrawColor(c RGB)
	SetFillColor(c RGB)
	SetLineWidth(w float64)
	SetDash(segments []float64, phase float64)
	ClearDash()
}

// pdfCanvas adapts a gofpdf document to the Canvas interface. The
// built-in fonts are cp1252 encoded, so every string crosses through
// the library's unicode translator exactly once, both when measured
// and when painted.
type pdfCanvas struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
}

var _ Canvas = (*pdfCanvas)(nil)

func newPDFCanvas(pdf *gofpdf.Fpdf, family string) *pdfCanvas {
	return &pdfCanvas{
		pdf:    pdf,
		family: family,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *pdfCanvas) SetFont(st TextStyle) {
	var style string
	if st.Bold {
		style += "B"
	}
	if st.Italic {
		style += "I"
	}
	c.pdf.SetFont(c.family, style, st.Size)
	c.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
}

func (c *pdfCanvas) TextWidth(s string) float64 {
	return c.pdf.GetStringWidth(c.tr(s))
}

func (c *pdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, c.tr(s))
}

func (c *pdfCanvas) Rect(x, y, w, h float64, style string) {
	c.pdf.Rect(x, y, w, h, style)
}

func (c *pdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *pdfCanvas) Image(path string, x, y, w, h float64) {
	c.pdf.ImageOptions(path, x, y, w, h, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
}

func (c *pdfCanvas) SetDrawColor(col RGB) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
}

func (c *pdfCanvas) SetFillColor(col RGB) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
}

func (c *pdfCanvas) SetLineWidth(w float64) {
	c.pdf.SetLineWidth(w)
}

func (c *pdfCanvas) SetDash(segments []float64, phase float64) {
	c.pdf.SetDashPattern(segments, phase)
}

func (c *pdfCanvas) ClearDash() {
	c.pdf.SetDashPattern([]float64{}, 0)
}
