package render

import "strings"

// Block is one unit of the document flow. Measure resolves the
// block's layout for the available width and must be called before
// Paint. Blocks are built per document and not reused.
type Block interface {
	Measure(c Canvas, avail float64) (w, h float64)
	Paint(c Canvas, x, y float64)
}

// Spacer inserts vertical whitespace between blocks.
type Spacer struct {
	Height float64
}

func (s *Spacer) Measure(_ Canvas, avail float64) (float64, float64) {
	return avail, s.Height
}

func (s *Spacer) Paint(Canvas, float64, float64) {}

// Paragraph is a wrapped run of text. Newlines force line breaks. A
// zero Width wraps to the full available width, a zero Leading uses
// 1.2 times the font size.
type Paragraph struct {
	Text    string
	Style   TextStyle
	Align   string // "L", "C" or "R"; empty is left
	Leading float64
	Width   float64

	lines []string
	width float64
}

func (p *Paragraph) leading() float64 {
	if p.Leading > 0 {
		return p.Leading
	}
	return 1.2 * p.Style.Size
}

func (p *Paragraph) Measure(c Canvas, avail float64) (float64, float64) {
	p.width = p.Width
	if p.width <= 0 || p.width > avail {
		p.width = avail
	}
	c.SetFont(p.Style)
	p.lines = p.lines[:0]
	for _, seg := range strings.Split(p.Text, "\n") {
		p.lines = append(p.lines, wrapText(c, seg, p.width)...)
	}
	return p.width, float64(len(p.lines)) * p.leading()
}

func (p *Paragraph) Paint(c Canvas, x, y float64) {
	c.SetFont(p.Style)
	leading := p.leading()
	for i, line := range p.lines {
		lx := x
		switch p.Align {
		case "C":
			lx = x + (p.width-c.TextWidth(line))/2
		case "R":
			lx = x + p.width - c.TextWidth(line)
		}
		c.Text(lx, y+float64(i)*leading+0.8*p.Style.Size, line)
	}
}

// TableCell is one cell of a Table. Zero Size inherits the table font
// size, a nil Fill leaves the cell transparent and a nil Color paints
// black. Prefix is painted bold ahead of Text on the first line and
// forces left alignment.
type TableCell struct {
	Text   string
	Prefix string
	Bold   bool
	Italic bool
	Size   float64
	Align  string
	Color  *RGB
	Fill   *RGB
}

// Table is a grid of cells with fixed column widths. Cell text wraps
// inside its column and each row grows to its tallest cell. A row
// holding a single cell spans every column.
type Table struct {
	Rows      [][]TableCell
	ColWidths []float64
	FontSize  float64 // 0 uses 9
	GridWidth float64 // 0 uses 1
	BoxWidth  float64 // heavier outer border, 0 disables
	GridColor RGB
	PadTop    float64
	PadBottom float64
	PadLeft   float64
	PadRight  float64
	VAlign    string // "M" middle (default) or "T" top

	width      float64
	height     float64
	rowHeights []float64
	cells      [][]measuredCell
}

type measuredCell struct {
	lines   []string
	style   TextStyle
	leading float64
	prefixW float64
	x       float64
	width   float64
}

func (t *Table) spans(row []TableCell) bool {
	return len(row) == 1 && len(t.ColWidths) > 1
}

func (t *Table) gridWidth() float64 {
	if t.GridWidth > 0 {
		return t.GridWidth
	}
	return 1
}

func (t *Table) Measure(c Canvas, avail float64) (float64, float64) {
	t.width = 0
	for _, w := range t.ColWidths {
		t.width += w
	}
	if t.width <= 0 {
		t.width = avail
	}
	baseSize := t.FontSize
	if baseSize == 0 {
		baseSize = 9
	}

	t.cells = make([][]measuredCell, len(t.Rows))
	t.rowHeights = make([]float64, len(t.Rows))
	t.height = 0
	for i, row := range t.Rows {
		mrow := make([]measuredCell, len(row))
		tallest := 0.0
		colX := 0.0
		for j, cell := range row {
			mc := measuredCell{x: colX}
			if t.spans(row) {
				mc.width = t.width
			} else {
				mc.width = t.ColWidths[j]
				colX += mc.width
			}

			size := cell.Size
			if size == 0 {
				size = baseSize
			}
			color := RGB{}
			if cell.Color != nil {
				color = *cell.Color
			}
			mc.style = TextStyle{Size: size, Bold: cell.Bold, Italic: cell.Italic, Color: color}
			mc.leading = size + 5

			wrapW := mc.width - t.PadLeft - t.PadRight
			firstW := wrapW
			if cell.Prefix != "" {
				bold := mc.style
				bold.Bold = true
				c.SetFont(bold)
				mc.prefixW = c.TextWidth(cell.Prefix + " ")
				firstW -= mc.prefixW
			}
			c.SetFont(mc.style)
			for s, seg := range strings.Split(cell.Text, "\n") {
				if s == 0 {
					mc.lines = wrapIndented(c, seg, firstW, wrapW)
				} else {
					mc.lines = append(mc.lines, wrapText(c, seg, wrapW)...)
				}
			}

			if h := float64(len(mc.lines)) * mc.leading; h > tallest {
				tallest = h
			}
			mrow[j] = mc
		}
		t.cells[i] = mrow
		t.rowHeights[i] = tallest + t.PadTop + t.PadBottom
		t.height += t.rowHeights[i]
	}
	return t.width, t.height
}

func (t *Table) Paint(c Canvas, x, y float64) {
	t.paintFills(c, x, y)
	t.paintText(c, x, y)
	t.paintGrid(c, x, y)
}

func (t *Table) paintFills(c Canvas, x, y float64) {
	rowY := y
	for i, row := range t.Rows {
		for j, cell := range row {
			if cell.Fill != nil {
				mc := t.cells[i][j]
				c.SetFillColor(*cell.Fill)
				c.Rect(x+mc.x, rowY, mc.width, t.rowHeights[i], "F")
			}
		}
		rowY += t.rowHeights[i]
	}
}

func (t *Table) paintText(c Canvas, x, y float64) {
	rowY := y
	for i, row := range t.Rows {
		for j, cell := range row {
			mc := t.cells[i][j]
			textH := float64(len(mc.lines)) * mc.leading
			top := rowY + (t.rowHeights[i]-textH)/2
			if t.VAlign == "T" {
				top = rowY + t.PadTop
			}

			if cell.Prefix != "" {
				bold := mc.style
				bold.Bold = true
				c.SetFont(bold)
				c.Text(x+mc.x+t.PadLeft, top+0.8*mc.style.Size, cell.Prefix)
			}
			c.SetFont(mc.style)
			for k, line := range mc.lines {
				lx := x + mc.x + t.PadLeft
				switch {
				case cell.Prefix != "":
					if k == 0 {
						lx += mc.prefixW
					}
				case cell.Align == "C":
					lx = x + mc.x + (mc.width-c.TextWidth(line))/2
				case cell.Align == "R":
					lx = x + mc.x + mc.width - t.PadRight - c.TextWidth(line)
				}
				c.Text(lx, top+float64(k)*mc.leading+0.8*mc.style.Size, line)
			}
		}
		rowY += t.rowHeights[i]
	}
}

func (t *Table) paintGrid(c Canvas, x, y float64) {
	c.SetDrawColor(t.GridColor)
	c.SetLineWidth(t.gridWidth())

	rowY := y
	c.Line(x, rowY, x+t.width, rowY)
	for _, h := range t.rowHeights {
		rowY += h
		c.Line(x, rowY, x+t.width, rowY)
	}

	rowY = y
	for i, row := range t.Rows {
		h := t.rowHeights[i]
		c.Line(x, rowY, x, rowY+h)
		if !t.spans(row) {
			colX := x
			for j := 0; j < len(t.ColWidths)-1; j++ {
				colX += t.ColWidths[j]
				c.Line(colX, rowY, colX, rowY+h)
			}
		}
		c.Line(x+t.width, rowY, x+t.width, rowY+h)
		rowY += h
	}

	if t.BoxWidth > t.gridWidth() {
		c.SetLineWidth(t.BoxWidth)
		c.Rect(x, y, t.width, t.height, "D")
	}
}

// wrapText greedily breaks s into lines no wider than width using the
// font most recently set on the canvas.
func wrapText(c Canvas, s string, width float64) []string {
	return wrapIndented(c, s, width, width)
}

// wrapIndented is wrapText with a separate width for the first line,
// used when a prefix has already claimed part of it. Words wider than
// a whole line are broken by rune.
func wrapIndented(c Canvas, s string, firstWidth, width float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	limit := firstWidth
	line := ""
	for _, word := range words {
		if line != "" {
			if c.TextWidth(line+" "+word) <= limit {
				line += " " + word
				continue
			}
			lines = append(lines, line)
			line = ""
			limit = width
		}
		for c.TextWidth(word) > limit {
			runes := []rune(word)
			cut := len(runes)
			for cut > 1 && c.TextWidth(string(runes[:cut])) > limit {
				cut--
			}
			lines = append(lines, string(runes[:cut]))
			limit = width
			word = string(runes[cut:])
		}
		if word != "" {
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
