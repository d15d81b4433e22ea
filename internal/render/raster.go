// Package render draws a document: into terminal cells for the editor
// view and into PNG files for export.
package render

import (
	"math"
	"strings"

	"figmini/internal/editor"
)

// CellSize is the screen-space size of one terminal cell.
type CellSize struct {
	W, H float64
}

// DefaultCell matches the 8x16 glyph cell of a typical terminal font.
var DefaultCell = CellSize{W: 8, H: 16}

type Cell struct {
	Rune    rune
	Fg      string
	Bg      string
	Element string
}

type Frame struct {
	Cols, Rows int
	Cells      [][]Cell
}

func (f Frame) At(col, row int) Cell { return f.Cells[row][col] }

// CellOf maps a screen point to the cell containing it, relative to the
// viewport origin.
func CellOf(vp editor.Viewport, cell CellSize, screen editor.Point) (int, int) {
	rel := screen.Sub(vp.Origin)
	return int(math.Floor(rel.X / cell.W)), int(math.Floor(rel.Y / cell.H))
}

// ScreenOf is the top-left screen point of a cell.
func ScreenOf(vp editor.Viewport, cell CellSize, col, row int) editor.Point {
	return vp.Origin.Add(editor.Point{X: float64(col) * cell.W, Y: float64(row) * cell.H})
}

// Raster paints elements bottom to top into a cols x rows frame whose
// top-left cell sits at the viewport origin.
func Raster(elements []editor.Element, vp editor.Viewport, cols, rows int, cell CellSize, selected string) Frame {
	f := Frame{Cols: cols, Rows: rows, Cells: make([][]Cell, rows)}
	for r := range f.Cells {
		f.Cells[r] = make([]Cell, cols)
		for c := range f.Cells[r] {
			f.Cells[r][c] = Cell{Rune: ' ', Bg: Background}
		}
	}
	paintGrid(f, vp, cell)

	for _, e := range elements {
		switch e.Kind {
		case editor.KindText:
			paintText(f, vp, cell, e)
		default:
			paintShape(f, vp, cell, e)
		}
	}
	for _, e := range elements {
		if e.ID == selected {
			paintSelection(f, vp, cell, e)
		}
	}
	return f
}

// span returns the cell range an element's box covers, clipped to f.
func span(f Frame, vp editor.Viewport, cell CellSize, e editor.Element, w, h float64) (c0, r0, c1, r1 int) {
	tl := vp.ToScreen(e.Origin())
	br := vp.ToScreen(editor.Point{X: e.X + w, Y: e.Y + h})
	c0, r0 = CellOf(vp, cell, tl)
	c1, r1 = CellOf(vp, cell, br)
	return max(c0, 0), max(r0, 0), min(c1, f.Cols-1), min(r1, f.Rows-1)
}

func center(vp editor.Viewport, cell CellSize, col, row int) editor.Point {
	p := ScreenOf(vp, cell, col, row)
	return vp.ToDocument(editor.Point{X: p.X + cell.W/2, Y: p.Y + cell.H/2})
}

func paintShape(f Frame, vp editor.Viewport, cell CellSize, e editor.Element) {
	c0, r0, c1, r1 := span(f, vp, cell, e, e.Width, e.Height)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if !e.Contains(center(vp, cell, c, r)) {
				continue
			}
			dst := &f.Cells[r][c]
			dst.Bg = blend(dst.Bg, e.Fill, e.Opacity)
			dst.Rune = ' '
			dst.Element = e.ID
		}
	}
}

// paintText writes the text glyphs from the element's top-left cell. The
// background is transparent, matching how text boxes render.
func paintText(f Frame, vp editor.Viewport, cell CellSize, e editor.Element) {
	col0, row0 := CellOf(vp, cell, vp.ToScreen(e.Origin()))
	for i, line := range strings.Split(e.Text, "\n") {
		r := row0 + i
		if r < 0 || r >= f.Rows {
			continue
		}
		for j, ch := range []rune(line) {
			c := col0 + j
			if c < 0 || c >= f.Cols {
				continue
			}
			dst := &f.Cells[r][c]
			dst.Rune = ch
			dst.Fg = blend(dst.Bg, e.Fill, e.Opacity)
			dst.Element = e.ID
		}
	}
}

func paintSelection(f Frame, vp editor.Viewport, cell CellSize, e editor.Element) {
	w, h := e.Width, e.Height
	if e.Kind == editor.KindText {
		tw, th := textExtent(e, vp, cell)
		w, h = max(w, tw), max(h, th)
	}
	c0, r0 := CellOf(vp, cell, vp.ToScreen(e.Origin()))
	br := vp.ToScreen(editor.Point{X: e.X + w, Y: e.Y + h})
	c1, r1 := CellOf(vp, cell, br.Sub(editor.Point{X: 1e-6, Y: 1e-6}))
	c1, r1 = max(c1, c0), max(r1, r0)
	c0, r0, c1, r1 = c0-1, r0-1, c1+1, r1+1

	set := func(c, r int, ch rune) {
		if c < 0 || r < 0 || c >= f.Cols || r >= f.Rows {
			return
		}
		f.Cells[r][c].Rune = ch
		f.Cells[r][c].Fg = SelectColor
	}
	for c := c0 + 1; c < c1; c++ {
		set(c, r0, '─')
		set(c, r1, '─')
	}
	for r := r0 + 1; r < r1; r++ {
		set(c0, r, '│')
		set(c1, r, '│')
	}
	set(c0, r0, '■')
	set(c1, r0, '■')
	set(c0, r1, '■')
	set(c1, r1, '■')
}

// textExtent is the document-space size of the rendered glyphs.
func textExtent(e editor.Element, vp editor.Viewport, cell CellSize) (float64, float64) {
	lines := strings.Split(e.Text, "\n")
	widest := 0
	for _, l := range lines {
		widest = max(widest, len([]rune(l)))
	}
	return float64(widest) * cell.W / vp.Scale, float64(len(lines)) * cell.H / vp.Scale
}

func paintGrid(f Frame, vp editor.Viewport, cell CellSize) {
	g := vp.Grid()
	if g.Spacing < cell.W {
		return
	}
	crosses := func(from, size, offset float64) bool {
		a := math.Floor((from - offset) / g.Spacing)
		b := math.Floor((from + size - offset) / g.Spacing)
		return a != b
	}
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			x := float64(c) * cell.W
			y := float64(r) * cell.H
			if crosses(x, cell.W, g.Offset.X) && crosses(y, cell.H, g.Offset.Y) {
				f.Cells[r][c].Rune = '·'
				f.Cells[r][c].Fg = GridColor
			}
		}
	}
}
