package render

// mm converts millimetres to PDF points.
const mm = 72.0 / 25.4

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B int
}

// Palette holds the color scheme of the official DMO form.
type Palette struct {
	Green       RGB
	GreenLight  RGB
	GreenBorder RGB
	Black       RGB
	White       RGB
	Gray        RGB
	LightGray   RGB
	DarkGray    RGB
}

// FontSizes holds the point sizes used across the form.
type FontSizes struct {
	Title    float64
	Subtitle float64
	Section  float64
	Body     float64
	Small    float64
	Tiny     float64
}

// PageGeometry describes the page and its margins in points.
type PageGeometry struct {
	Width  float64
	Height float64
	Margin float64
}

// ContentWidth returns the printable width between the margins.
func (g PageGeometry) ContentWidth() float64 {
	return g.Width - 2*g.Margin
}

// ContentHeight returns the printable height between the margins.
func (g PageGeometry) ContentHeight() float64 {
	return g.Height - 2*g.Margin
}

// TextStyle selects a font face, size and color for a run of text.
type TextStyle struct {
	Size   float64
	Bold   bool
	Italic bool
	Color  RGB
}

// Styles bundles the layout constants the drawing code uses.
type Styles struct {
	FontFamily string
	Palette    Palette
	Sizes      FontSizes
	Page       PageGeometry

	SectionSpacing float64
	FieldSpacing   float64
	CheckboxSize   float64
	InputBoxWidth  float64
	InputBoxHeight float64
}

// DefaultStyles returns the styling of the official FGN Savings Bond
// subscription form. Dimensions are points on an A4 page.
func DefaultStyles() *Styles {
	return &Styles{
		FontFamily: "Helvetica",
		Palette: Palette{
			Green:       RGB{0, 100, 0},
			GreenLight:  RGB{232, 245, 233},
			GreenBorder: RGB{0, 128, 0},
			Black:       RGB{0, 0, 0},
			White:       RGB{255, 255, 255},
			Gray:        RGB{102, 102, 102},
			LightGray:   RGB{245, 245, 245},
			DarkGray:    RGB{51, 51, 51},
		},
		Sizes: FontSizes{
			Title:    14,
			Subtitle: 12,
			Section:  10,
			Body:     9,
			Small:    8,
			Tiny:     7,
		},
		Page: PageGeometry{
			Width:  595.28,
			Height: 841.89,
			Margin: 15 * mm,
		},
		SectionSpacing: 8 * mm,
		FieldSpacing:   3 * mm,
		CheckboxSize:   10,
		InputBoxWidth:  12,
		InputBoxHeight: 14,
	}
}

// Title is the style of the document title.
func (s *Styles) Title() TextStyle {
	return TextStyle{Size: s.Sizes.Title, Bold: true, Color: s.Palette.Black}
}

// Subtitle is the style of secondary headings.
func (s *Styles) Subtitle() TextStyle {
	return TextStyle{Size: s.Sizes.Subtitle, Bold: true, Color: s.Palette.Black}
}

// SectionTitle is the style of section header lettering.
func (s *Styles) SectionTitle() TextStyle {
	return TextStyle{Size: s.Sizes.Section, Bold: true, Color: s.Palette.White}
}

// Body is the style of regular form text.
func (s *Styles) Body() TextStyle {
	return TextStyle{Size: s.Sizes.Body, Color: s.Palette.Black}
}

// Label is the style of field labels.
func (s *Styles) Label() TextStyle {
	return TextStyle{Size: s.Sizes.Body, Bold: true, Color: s.Palette.Black}
}

// Small is the style of instructions and fine print.
func (s *Styles) Small() TextStyle {
	return TextStyle{Size: s.Sizes.Small, Color: s.Palette.Gray}
}

// Tiny is the style of footnotes such as the generation stamp.
func (s *Styles) Tiny() TextStyle {
	return TextStyle{Size: s.Sizes.Tiny, Color: s.Palette.Gray}
}
