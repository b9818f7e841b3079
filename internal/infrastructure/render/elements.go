package render

import (
	"strings"
	"unicode/utf8"
)

// Form field primitives matching the printed DMO form. Each one is a
// fixed-size Block; Measure reports the footprint and Paint draws at
// the given top-left corner.

var (
	_ Block = (*CheckboxField)(nil)
	_ Block = (*CheckboxGroup)(nil)
	_ Block = (*InputBoxes)(nil)
	_ Block = (*SignatureLine)(nil)
	_ Block = (*StampArea)(nil)
	_ Block = (*SectionHeader)(nil)
	_ Block = (*ThumbprintArea)(nil)
	_ Block = (*DottedInputLine)(nil)
)

// defaultStyles carries the official form styling for elements drawn
// outside a Styles context.
var (
	defaultStyles  = DefaultStyles()
	defaultPalette = defaultStyles.Palette
	defaultSizes   = defaultStyles.Sizes
)

// CheckboxField is a single checkbox with a trailing label.
type CheckboxField struct {
	Label      string
	Checked    bool
	Size       float64 // 0 uses the CheckboxSize token
	LabelWidth float64 // 0 uses 80
}

func (f *CheckboxField) size() float64 {
	if f.Size > 0 {
		return f.Size
	}
	return defaultStyles.CheckboxSize
}

func (f *CheckboxField) labelWidth() float64 {
	if f.LabelWidth > 0 {
		return f.LabelWidth
	}
	return 80
}

func (f *CheckboxField) Measure(Canvas, float64) (float64, float64) {
	size := f.size()
	h := size
	if h < 12 {
		h = 12
	}
	return size + f.labelWidth() + 5, h
}

func (f *CheckboxField) Paint(c Canvas, x, y float64) {
	size := f.size()
	_, h := f.Measure(c, 0)

	c.SetDrawColor(defaultPalette.Green)
	c.SetLineWidth(1)
	c.Rect(x, y+(h-size)/2, size, size, "D")

	if f.Checked {
		c.SetFont(TextStyle{Size: size - 2, Bold: true, Color: defaultPalette.Green})
		c.Text(x+1.5, y+(h+size)/2-1.5, "X")
	}

	c.SetFont(TextStyle{Size: defaultSizes.Body, Color: defaultPalette.Black})
	c.Text(x+size+4, y+(h+defaultSizes.Body)/2, f.Label)
}

// CheckboxOption is one entry of a CheckboxGroup.
type CheckboxOption struct {
	Value string
	Label string
}

// CheckboxGroup lays checkboxes out horizontally with at most one
// option checked. Multi-choice grids such as the investor categories
// are assembled as table cells carrying their own tick marks rather
// than with this element.
type CheckboxGroup struct {
	Options  []CheckboxOption
	Selected string
	Spacing  float64 // 0 uses 20
	Size     float64 // 0 uses the CheckboxSize token
}

func (g *CheckboxGroup) spacing() float64 {
	if g.Spacing > 0 {
		return g.Spacing
	}
	return 20
}

func (g *CheckboxGroup) size() float64 {
	if g.Size > 0 {
		return g.Size
	}
	return defaultStyles.CheckboxSize
}

// stride is the horizontal room one option occupies, label width
// estimated at five points per character like the paper layout.
func (g *CheckboxGroup) stride(opt CheckboxOption) float64 {
	return g.size() + 5*float64(utf8.RuneCountInString(opt.Label)) + g.spacing()
}

func (g *CheckboxGroup) Measure(Canvas, float64) (float64, float64) {
	w := 0.0
	for _, opt := range g.Options {
		w += g.stride(opt)
	}
	h := g.size()
	if h < 14 {
		h = 14
	}
	return w, h
}

func (g *CheckboxGroup) Paint(c Canvas, x, y float64) {
	size := g.size()
	_, h := g.Measure(c, 0)

	xOff := x
	for _, opt := range g.Options {
		c.SetDrawColor(defaultPalette.Green)
		c.SetLineWidth(1)
		c.Rect(xOff, y+(h-size)/2, size, size, "D")

		if opt.Value == g.Selected {
			c.SetFont(TextStyle{Size: size - 2, Bold: true, Color: defaultPalette.Green})
			c.Text(xOff+2, y+(h+size)/2-2, "X")
		}

		c.SetFont(TextStyle{Size: defaultSizes.Body, Color: defaultPalette.Black})
		c.Text(xOff+size+3, y+(h+size)/2-1, opt.Label)

		xOff += g.stride(opt)
	}
}

// InputBoxes draws one bordered box per character, as used for CSCS,
// CHN, BVN and account numbers. The value is upper-cased and anything
// beyond the box count is dropped.
type InputBoxes struct {
	Value     string
	NumBoxes  int     // 0 uses 12
	BoxWidth  float64 // 0 uses the InputBoxWidth token
	BoxHeight float64 // 0 uses the InputBoxHeight token
	Prefix    string
}

// NewPhoneInputBoxes builds the phone number variant: fourteen
// narrower boxes holding only digits and a leading plus.
func NewPhoneInputBoxes(value, prefix string) *InputBoxes {
	var clean strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' || r == '+' {
			clean.WriteRune(r)
		}
	}
	return &InputBoxes{
		Value:    clean.String(),
		NumBoxes: 14,
		BoxWidth: 11,
		Prefix:   prefix,
	}
}

func (b *InputBoxes) numBoxes() int {
	if b.NumBoxes > 0 {
		return b.NumBoxes
	}
	return 12
}

func (b *InputBoxes) boxWidth() float64 {
	if b.BoxWidth > 0 {
		return b.BoxWidth
	}
	return defaultStyles.InputBoxWidth
}

func (b *InputBoxes) boxHeight() float64 {
	if b.BoxHeight > 0 {
		return b.BoxHeight
	}
	return defaultStyles.InputBoxHeight
}

func (b *InputBoxes) Measure(Canvas, float64) (float64, float64) {
	w := float64(b.numBoxes()) * b.boxWidth()
	if b.Prefix != "" {
		w += 6 * float64(utf8.RuneCountInString(b.Prefix))
	}
	return w, b.boxHeight()
}

func (b *InputBoxes) Paint(c Canvas, x, y float64) {
	boxW, boxH := b.boxWidth(), b.boxHeight()

	xOff := 0.0
	if b.Prefix != "" {
		c.SetFont(TextStyle{Size: defaultSizes.Small, Color: defaultPalette.Black})
		c.Text(x, y+(boxH+defaultSizes.Small)/2, b.Prefix)
		xOff = 5*float64(utf8.RuneCountInString(b.Prefix)) + 4
	}

	c.SetDrawColor(defaultPalette.Green)
	c.SetLineWidth(0.75)

	chars := []rune(strings.ToUpper(b.Value))
	for i := 0; i < b.numBoxes(); i++ {
		boxX := x + xOff + float64(i)*boxW
		c.Rect(boxX, y, boxW, boxH, "D")

		if i < len(chars) {
			c.SetFont(TextStyle{Size: defaultSizes.Body, Color: defaultPalette.Black})
			c.Text(boxX+(boxW-5)/2, y+(boxH+defaultSizes.Body)/2, string(chars[i]))
		}
	}
}

// SignatureLine is a ruled signature line with a label below it,
// optionally followed by a shorter date line.
type SignatureLine struct {
	Label       string
	LineWidth   float64 // 0 uses 150
	IncludeDate bool
}

func (l *SignatureLine) lineWidth() float64 {
	if l.LineWidth > 0 {
		return l.LineWidth
	}
	return 150
}

func (l *SignatureLine) Measure(Canvas, float64) (float64, float64) {
	w := l.lineWidth()
	if l.IncludeDate {
		w += 80
	}
	return w, 30
}

func (l *SignatureLine) Paint(c Canvas, x, y float64) {
	width := l.lineWidth()

	c.SetDrawColor(defaultPalette.Black)
	c.SetLineWidth(0.5)
	c.Line(x, y+15, x+width, y+15)

	c.SetFont(TextStyle{Size: defaultSizes.Small, Color: defaultPalette.Black})
	c.Text(x, y+27, l.Label)

	if l.IncludeDate {
		dateX := x + width + 20
		c.Line(dateX, y+15, dateX+60, y+15)
		c.Text(dateX, y+27, "Date:")
	}
}

// StampArea is a bordered box for the receiving agent's stamp with a
// centered caption underneath.
type StampArea struct {
	Label  string  // "" uses "Stamp of Receiving Agent"
	Width  float64 // 0 uses 100
	Height float64 // 0 uses 60
}

func (a *StampArea) label() string {
	if a.Label != "" {
		return a.Label
	}
	return "Stamp of Receiving Agent"
}

func (a *StampArea) Measure(Canvas, float64) (float64, float64) {
	w, h := a.Width, a.Height
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 60
	}
	return w, h
}

func (a *StampArea) Paint(c Canvas, x, y float64) {
	w, h := a.Measure(c, 0)

	c.SetDrawColor(defaultPalette.Green)
	c.SetLineWidth(1)
	c.Rect(x, y, w, h-10, "D")

	st := TextStyle{Size: defaultSizes.Small, Color: defaultPalette.Black}
	c.SetFont(st)
	c.Text(x+(w-c.TextWidth(a.label()))/2, y+h, a.label())
}

// SectionHeader is the lettered green banner that opens each form
// section. An empty letter still paints the letter cell.
type SectionHeader struct {
	Letter string
	Title  string
	Width  float64
}

const (
	sectionHeaderHeight = 20
	sectionLetterWidth  = 20
)

func (h *SectionHeader) Measure(Canvas, float64) (float64, float64) {
	return h.Width, sectionHeaderHeight
}

func (h *SectionHeader) Paint(c Canvas, x, y float64) {
	c.SetFillColor(defaultPalette.Green)
	c.Rect(x, y, sectionLetterWidth, sectionHeaderHeight, "F")

	c.SetFont(TextStyle{Size: defaultSizes.Section, Bold: true, Color: defaultPalette.White})
	letterX := x + (sectionLetterWidth-c.TextWidth(h.Letter))/2
	c.Text(letterX, y+15, h.Letter)

	c.SetFillColor(defaultPalette.GreenLight)
	c.Rect(x+sectionLetterWidth, y, h.Width-sectionLetterWidth, sectionHeaderHeight, "F")

	c.SetFont(TextStyle{Size: defaultSizes.Section, Bold: true, Color: defaultPalette.Black})
	c.Text(x+sectionLetterWidth+8, y+15, h.Title)

	c.SetDrawColor(defaultPalette.Green)
	c.SetLineWidth(1)
	c.Rect(x, y, h.Width, sectionHeaderHeight, "D")
}

// ThumbprintArea is the bordered thumbprint box for applicants who
// sign by thumbprint. The caption hangs below the measured footprint
// like on the paper form.
type ThumbprintArea struct {
	Width  float64 // 0 uses 80
	Height float64 // 0 uses 60
}

func (a *ThumbprintArea) Measure(Canvas, float64) (float64, float64) {
	w, h := a.Width, a.Height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 60
	}
	return w, h
}

func (a *ThumbprintArea) Paint(c Canvas, x, y float64) {
	w, h := a.Measure(c, 0)

	c.SetDrawColor(defaultPalette.Green)
	c.SetLineWidth(1)
	c.Rect(x, y, w, h-15, "D")

	c.SetFont(TextStyle{Size: defaultSizes.Section, Bold: true, Color: defaultPalette.Green})
	c.Text(x+5, y+12, "C")

	c.SetFont(TextStyle{Size: defaultSizes.Small, Color: defaultPalette.Black})
	c.Text(x, y+h-3, "Thumb print of")
	c.Text(x, y+h+6, "illiterate applicant")
}

// DottedInputLine is a dotted rule for handwritten entries, with an
// optional label in front and a preprinted value on the line.
type DottedInputLine struct {
	Label      string
	Value      string
	LineWidth  float64 // 0 uses 200
	LabelWidth float64 // 0 uses 100
}

func (l *DottedInputLine) lineWidth() float64 {
	if l.LineWidth > 0 {
		return l.LineWidth
	}
	return 200
}

func (l *DottedInputLine) labelWidth() float64 {
	if l.LabelWidth > 0 {
		return l.LabelWidth
	}
	return 100
}

func (l *DottedInputLine) Measure(Canvas, float64) (float64, float64) {
	return l.labelWidth() + l.lineWidth(), 16
}

func (l *DottedInputLine) Paint(c Canvas, x, y float64) {
	body := TextStyle{Size: defaultSizes.Body, Color: defaultPalette.Black}

	if l.Label != "" {
		c.SetFont(body)
		c.Text(x, y+12, l.Label)
	}

	lineStart := x
	if l.Label != "" {
		lineStart = x + l.labelWidth()
	}
	c.SetDrawColor(defaultPalette.Gray)
	c.SetLineWidth(0.5)
	c.SetDash([]float64{2, 2}, 0)
	c.Line(lineStart, y+14, lineStart+l.lineWidth(), y+14)
	c.ClearDash()

	if l.Value != "" {
		c.SetFont(body)
		c.Text(lineStart+5, y+12, l.Value)
	}
}
