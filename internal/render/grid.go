package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spacehole-rogue/spacecleanup/internal/world"
)

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph rune
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph rune, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank. Blank cells are transparent, so
// whatever was drawn underneath (the starfield) shows through.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}
	}
}

// Fill paints a rectangle of cells with glyph.
func (b *CellBuffer) Fill(x, y, w, h int, glyph rune, fg, bg uint8) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, glyph, fg, bg)
		}
	}
}

// Box draws a single-line border with the given interior background.
func (b *CellBuffer) Box(x, y, w, h int, fg, bg uint8) {
	if w < 2 || h < 2 {
		return
	}
	b.Fill(x, y, w, h, ' ', fg, bg)
	for col := x + 1; col < x+w-1; col++ {
		b.Set(col, y, BoxH, fg, bg)
		b.Set(col, y+h-1, BoxH, fg, bg)
	}
	for row := y + 1; row < y+h-1; row++ {
		b.Set(x, row, BoxV, fg, bg)
		b.Set(x+w-1, row, BoxV, fg, bg)
	}
	b.Set(x, y, BoxTL, fg, bg)
	b.Set(x+w-1, y, BoxTR, fg, bg)
	b.Set(x, y+h-1, BoxBL, fg, bg)
	b.Set(x+w-1, y+h-1, BoxBR, fg, bg)
}

// textSubstitutes fold punctuation the atlas lacks onto ASCII.
var textSubstitutes = map[rune]rune{
	'—': '-',
	'–': '-',
	'…': '.',
	'“': '"',
	'”': '"',
	'’': '\'',
	0xFE0F: 0, // emoji presentation selector
}

// WriteString writes a string starting at (x, y). Each rune occupies
// one cell and the number of cells used is returned.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	offset := 0
	for _, ch := range s {
		if sub, ok := textSubstitutes[ch]; ok {
			if sub == 0 {
				continue
			}
			ch = sub
		}
		b.Set(x+offset, y, ch, fg, bg)
		offset++
	}
	return offset
}

// TextWidth returns how many cells WriteString would use for s.
func TextWidth(s string) int {
	n := 0
	for _, ch := range s {
		if sub, ok := textSubstitutes[ch]; ok && sub == 0 {
			continue
		}
		n++
	}
	return n
}

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders the entire CellBuffer to the screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions

	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			// Draw background color
			if cell.BG != ColorBlack {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}

			// Draw foreground glyph
			if cell.Glyph != ' ' && cell.Glyph != 0 {
				glyph := r.Atlas.Glyph(cell.Glyph)
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.FG])
				screen.DrawImage(glyph, &op)
			}
		}
	}
}

// DrawFloating renders a single cell-sized glyph at sub-pixel screen
// coordinates. Used for text that sits on pixel layout (target labels).
func (r *GridRenderer) DrawFloating(screen *ebiten.Image, glyph rune, fg uint8, px, py float64) {
	r.DrawGlyph(screen, glyph, fg, px, py, float64(r.CellW), 1)
}

// DrawGlyph renders glyph scaled to a size x size square with its
// top-left at (px, py), tinted fg and faded by alpha.
func (r *GridRenderer) DrawGlyph(screen *ebiten.Image, glyph rune, fg uint8, px, py, size, alpha float64) {
	if glyph == ' ' || glyph == 0 || alpha <= 0 {
		return
	}
	g := r.Atlas.Glyph(glyph)
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(size/GlyphWidth, size/GlyphHeight)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(Palette[fg])
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g, &op)
}

// DrawText writes s at pixel position (px, py) one cell per rune.
func (r *GridRenderer) DrawText(screen *ebiten.Image, s string, fg uint8, px, py float64) {
	x := px
	for _, ch := range s {
		if sub, ok := textSubstitutes[ch]; ok {
			if sub == 0 {
				continue
			}
			ch = sub
		}
		r.DrawFloating(screen, ch, fg, x, py)
		x += float64(r.CellW)
	}
}

// FillRect paints a solid rectangle in palette color clr.
func (r *GridRenderer) FillRect(screen *ebiten.Image, rect world.Rect, clr uint8, alpha float64) {
	if rect.W <= 0 || rect.H <= 0 || alpha <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(rect.W, rect.H)
	op.GeoM.Translate(rect.X, rect.Y)
	op.ColorScale.ScaleWithColor(Palette[clr])
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(r.bgPixel, &op)
}

// StrokeRect outlines rect with lines of the given thickness.
func (r *GridRenderer) StrokeRect(screen *ebiten.Image, rect world.Rect, thickness float64, clr uint8, alpha float64) {
	t := thickness
	r.FillRect(screen, world.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: t}, clr, alpha)
	r.FillRect(screen, world.Rect{X: rect.X, Y: rect.Bottom() - t, W: rect.W, H: t}, clr, alpha)
	r.FillRect(screen, world.Rect{X: rect.X, Y: rect.Y + t, W: t, H: rect.H - 2*t}, clr, alpha)
	r.FillRect(screen, world.Rect{X: rect.Right() - t, Y: rect.Y + t, W: t, H: rect.H - 2*t}, clr, alpha)
}
