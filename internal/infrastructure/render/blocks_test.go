package render

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCanvas records drawing operations with a fixed five point glyph
// width, so wrapping and placement assert deterministically.
type fakeCanvas struct {
	font      TextStyle
	draw      RGB
	fill      RGB
	lineWidth float64
	dash      []float64
	ops       []canvasOp
}

type canvasOp struct {
	kind  string // "text", "rect", "line", "image", "dash", "cleardash"
	text  string
	x, y  float64
	x2    float64
	y2    float64
	w, h  float64
	style string
	font  TextStyle
	draw  RGB
	fill  RGB
	width float64
}

var _ Canvas = (*fakeCanvas)(nil)

func (f *fakeCanvas) SetFont(st TextStyle) { f.font = st }

func (f *fakeCanvas) TextWidth(s string) float64 {
	return 5 * float64(utf8.RuneCountInString(s))
}

func (f *fakeCanvas) Text(x, y float64, s string) {
	f.ops = append(f.ops, canvasOp{kind: "text", text: s, x: x, y: y, font: f.font})
}

func (f *fakeCanvas) Rect(x, y, w, h float64, style string) {
	f.ops = append(f.ops, canvasOp{
		kind: "rect", x: x, y: y, w: w, h: h, style: style,
		draw: f.draw, fill: f.fill, width: f.lineWidth,
	})
}

func (f *fakeCanvas) Line(x1, y1, x2, y2 float64) {
	f.ops = append(f.ops, canvasOp{
		kind: "line", x: x1, y: y1, x2: x2, y2: y2,
		draw: f.draw, width: f.lineWidth, style: dashStyle(f.dash),
	})
}

func dashStyle(dash []float64) string {
	if len(dash) > 0 {
		return "dashed"
	}
	return "solid"
}

func (f *fakeCanvas) Image(path string, x, y, w, h float64) {
	f.ops = append(f.ops, canvasOp{kind: "image", text: path, x: x, y: y, w: w, h: h})
}

func (f *fakeCanvas) SetDrawColor(c RGB)  { f.draw = c }
func (f *fakeCanvas) SetFillColor(c RGB)  { f.fill = c }
func (f *fakeCanvas) SetLineWidth(w float64) { f.lineWidth = w }

func (f *fakeCanvas) SetDash(segments []float64, phase float64) {
	f.dash = segments
	f.ops = append(f.ops, canvasOp{kind: "dash"})
}

func (f *fakeCanvas) ClearDash() {
	f.dash = nil
	f.ops = append(f.ops, canvasOp{kind: "cleardash"})
}

func (f *fakeCanvas) opsOfKind(kind string) []canvasOp {
	var out []canvasOp
	for _, op := range f.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (f *fakeCanvas) texts() []string {
	var out []string
	for _, op := range f.opsOfKind("text") {
		out = append(out, op.text)
	}
	return out
}

func (f *fakeCanvas) findText(t *testing.T, s string) canvasOp {
	t.Helper()
	for _, op := range f.opsOfKind("text") {
		if op.text == s {
			return op
		}
	}
	t.Fatalf("text %q was not painted; painted: %v", s, f.texts())
	return canvasOp{}
}

func TestWrapText(t *testing.T) {
	c := &fakeCanvas{}

	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{
			name:  "fits on one line",
			text:  "short",
			width: 100,
			want:  []string{"short"},
		},
		{
			name:  "wraps at word boundary",
			text:  "one two three",
			width: 35,
			want:  []string{"one two", "three"},
		},
		{
			name:  "word wider than line breaks by rune",
			text:  "abcdefghij",
			width: 25,
			want:  []string{"abcde", "fghij"},
		},
		{
			name:  "empty text keeps one empty line",
			text:  "",
			width: 50,
			want:  []string{""},
		},
		{
			name:  "collapses interior whitespace",
			text:  "a   b",
			width: 50,
			want:  []string{"a b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(c, tt.text, tt.width))
		})
	}
}

func TestWrapIndented(t *testing.T) {
	c := &fakeCanvas{}

	// First line is narrower; the broken word continues at full width.
	got := wrapIndented(c, "alpha beta", 20, 50)
	assert.Equal(t, []string{"alph", "a beta"}, got)
}

func TestSpacer(t *testing.T) {
	c := &fakeCanvas{}
	s := &Spacer{Height: 12}

	w, h := s.Measure(c, 400)
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 12.0, h)

	s.Paint(c, 0, 0)
	assert.Empty(t, c.ops)
}

func TestParagraphMeasure(t *testing.T) {
	c := &fakeCanvas{}

	t.Run("single line uses default leading", func(t *testing.T) {
		p := &Paragraph{Text: "hello world", Style: TextStyle{Size: 10}}
		w, h := p.Measure(c, 100)
		assert.Equal(t, 100.0, w)
		assert.InDelta(t, 12.0, h, 0.001)
	})

	t.Run("newlines force line breaks", func(t *testing.T) {
		p := &Paragraph{Text: "a\n\nb", Style: TextStyle{Size: 10}}
		_, h := p.Measure(c, 100)
		assert.InDelta(t, 36.0, h, 0.001)
	})

	t.Run("explicit leading", func(t *testing.T) {
		p := &Paragraph{Text: "a\nb", Style: TextStyle{Size: 7}, Leading: 9}
		_, h := p.Measure(c, 100)
		assert.InDelta(t, 18.0, h, 0.001)
	})

	t.Run("fixed width wins over available", func(t *testing.T) {
		p := &Paragraph{Text: "x", Style: TextStyle{Size: 9}, Width: 80}
		w, _ := p.Measure(c, 500)
		assert.Equal(t, 80.0, w)
	})
}

func TestParagraphPaint(t *testing.T) {
	t.Run("left aligned baselines", func(t *testing.T) {
		c := &fakeCanvas{}
		p := &Paragraph{Text: "aa\nbb", Style: TextStyle{Size: 10}}
		p.Measure(c, 100)
		p.Paint(c, 50, 200)

		texts := c.opsOfKind("text")
		require.Len(t, texts, 2)
		assert.Equal(t, 50.0, texts[0].x)
		assert.InDelta(t, 208.0, texts[0].y, 0.001) // 200 + 0.8*10
		assert.InDelta(t, 220.0, texts[1].y, 0.001) // next line 12 lower
	})

	t.Run("centered", func(t *testing.T) {
		c := &fakeCanvas{}
		p := &Paragraph{Text: "hello", Style: TextStyle{Size: 10}, Align: "C"}
		p.Measure(c, 100)
		p.Paint(c, 0, 0)

		op := c.findText(t, "hello")
		assert.InDelta(t, 37.5, op.x, 0.001) // (100-25)/2
	})

	t.Run("right aligned", func(t *testing.T) {
		c := &fakeCanvas{}
		p := &Paragraph{Text: "hello", Style: TextStyle{Size: 10}, Align: "R"}
		p.Measure(c, 100)
		p.Paint(c, 0, 0)

		op := c.findText(t, "hello")
		assert.InDelta(t, 75.0, op.x, 0.001)
	})
}

func TestTableMeasure(t *testing.T) {
	c := &fakeCanvas{}

	t.Run("rows grow to tallest cell", func(t *testing.T) {
		table := &Table{
			Rows: [][]TableCell{
				{{Text: "short"}, {Text: "short"}},
				{{Text: "this text wraps across several lines in its column"}, {Text: "x"}},
			},
			ColWidths: []float64{100, 100},
			PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
		}
		w, h := table.Measure(c, 500)
		assert.Equal(t, 200.0, w)

		// Row 1: one 14pt line plus padding. Row 2: the long cell
		// wraps to four lines of at most 17 glyphs.
		require.Len(t, table.rowHeights, 2)
		assert.InDelta(t, 22.0, table.rowHeights[0], 0.001)
		assert.InDelta(t, 64.0, table.rowHeights[1], 0.001)
		assert.InDelta(t, 86.0, h, 0.001)
	})

	t.Run("single cell row spans all columns", func(t *testing.T) {
		table := &Table{
			Rows: [][]TableCell{
				{{Text: "spanning header"}},
				{{Text: "a"}, {Text: "b"}},
			},
			ColWidths: []float64{100, 100},
			PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
		}
		table.Measure(c, 500)
		assert.Equal(t, 200.0, table.cells[0][0].width)
		assert.Equal(t, 100.0, table.cells[1][1].width)
	})

	t.Run("newline in cell forces extra line", func(t *testing.T) {
		table := &Table{
			Rows:      [][]TableCell{{{Text: "a\n\nb"}}},
			ColWidths: []float64{100},
			PadTop:    8, PadBottom: 8,
		}
		_, h := table.Measure(c, 500)
		assert.InDelta(t, 3*14+16, h, 0.001)
	})
}

func TestTablePaint(t *testing.T) {
	t.Run("fill paints behind label cells", func(t *testing.T) {
		c := &fakeCanvas{}
		gray := RGB{245, 245, 245}
		table := &Table{
			Rows:      [][]TableCell{{{Text: "Label:", Bold: true, Fill: &gray}, {Text: "value"}}},
			ColWidths: []float64{100, 100},
			GridColor: RGB{0, 100, 0},
			PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
		}
		table.Measure(c, 500)
		table.Paint(c, 0, 0)

		rects := c.opsOfKind("rect")
		require.NotEmpty(t, rects)
		assert.Equal(t, "F", rects[0].style)
		assert.Equal(t, gray, rects[0].fill)
		assert.Equal(t, 100.0, rects[0].w)

		label := c.findText(t, "Label:")
		assert.True(t, label.font.Bold)
		value := c.findText(t, "value")
		assert.False(t, value.font.Bold)
		assert.Equal(t, 106.0, value.x)
	})

	t.Run("grid skips interior lines of spanned rows", func(t *testing.T) {
		c := &fakeCanvas{}
		table := &Table{
			Rows: [][]TableCell{
				{{Text: "header"}},
				{{Text: "a"}, {Text: "b"}},
			},
			ColWidths: []float64{100, 100},
			GridColor: RGB{0, 100, 0},
		}
		table.Measure(c, 500)
		table.Paint(c, 0, 0)

		// 3 horizontal, 2 verticals on the spanned row, 3 on the
		// normal row.
		assert.Len(t, c.opsOfKind("line"), 8)
	})

	t.Run("heavy box is drawn over the grid", func(t *testing.T) {
		c := &fakeCanvas{}
		table := &Table{
			Rows:      [][]TableCell{{{Text: "a"}, {Text: "b"}}},
			ColWidths: []float64{50, 50},
			BoxWidth:  1.5,
			GridColor: RGB{0, 100, 0},
			PadTop:    4, PadBottom: 4,
		}
		_, h := table.Measure(c, 500)
		table.Paint(c, 10, 20)

		rects := c.opsOfKind("rect")
		require.Len(t, rects, 1)
		assert.Equal(t, "D", rects[0].style)
		assert.Equal(t, 1.5, rects[0].width)
		assert.Equal(t, 10.0, rects[0].x)
		assert.Equal(t, 20.0, rects[0].y)
		assert.Equal(t, 100.0, rects[0].w)
		assert.Equal(t, h, rects[0].h)
	})

	t.Run("prefix paints bold then offsets the value", func(t *testing.T) {
		c := &fakeCanvas{}
		table := &Table{
			Rows:      [][]TableCell{{{Prefix: "Min:", Text: "N5,000.00"}}},
			ColWidths: []float64{200},
			PadLeft:   6, PadRight: 6,
		}
		table.Measure(c, 500)
		table.Paint(c, 0, 0)

		prefix := c.findText(t, "Min:")
		assert.True(t, prefix.font.Bold)
		assert.Equal(t, 6.0, prefix.x)

		value := c.findText(t, "N5,000.00")
		assert.False(t, value.font.Bold)
		assert.Equal(t, 31.0, value.x) // 6 + width of "Min: "
	})

	t.Run("cell alignment", func(t *testing.T) {
		c := &fakeCanvas{}
		table := &Table{
			Rows:      [][]TableCell{{{Text: "mid", Align: "C"}, {Text: "end", Align: "R"}}},
			ColWidths: []float64{100, 100},
			PadRight:  6,
		}
		table.Measure(c, 500)
		table.Paint(c, 0, 0)

		mid := c.findText(t, "mid")
		assert.InDelta(t, 42.5, mid.x, 0.001) // (100-15)/2
		end := c.findText(t, "end")
		assert.InDelta(t, 179.0, end.x, 0.001) // 200-6-15
	})
}
