package render

import (
	"image"
	"image/color"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// Box-drawing and block runes used by the HUD and the modal.
const (
	BoxH        = '─'
	BoxV        = '│'
	BoxTL       = '┌'
	BoxTR       = '┐'
	BoxBL       = '└'
	BoxBR       = '┘'
	ShadeLight  = '░'
	ShadeMedium = '▒'
	ShadeDark   = '▓'
	BlockFull   = '█'
	BlockSquare = '■'
)

// FallbackGlyph is drawn for runes the atlas does not carry.
const FallbackGlyph = '?'

// FontAtlas holds the glyph atlas and cached sub-images, keyed by rune.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs map[rune]*ebiten.Image
}

// NewFontAtlas generates the atlas at startup.
// ASCII characters are rendered with basicfont.Face7x13; accented
// Latin-1 letters are the base letter plus a drawn mark.
// Box-drawing, block and pictogram glyphs are drawn manually.
func NewFontAtlas() *FontAtlas {
	img, runes := rasterizeAtlas()
	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg, glyphs: make(map[rune]*ebiten.Image, len(runes))}

	// Cache sub-images for each glyph
	for i, r := range runes {
		x, y := cellOrigin(i)
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[r] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for r, or the fallback glyph.
func (a *FontAtlas) Glyph(r rune) *ebiten.Image {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	return a.glyphs[FallbackGlyph]
}

// Has reports whether r has its own glyph.
func (a *FontAtlas) Has(r rune) bool {
	_, ok := a.glyphs[r]
	return ok
}

// atlasRunes lists every rune in atlas order.
func atlasRunes() []rune {
	var runes []rune
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	for r := rune(0xC0); r <= 0xFF; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, BoxH, BoxV, BoxTL, BoxTR, BoxBL, BoxBR)
	runes = append(runes, ShadeLight, ShadeMedium, ShadeDark, BlockFull, BlockSquare)
	for _, p := range pictogramOrder {
		runes = append(runes, p)
	}
	return runes
}

func cellOrigin(i int) (int, int) {
	return (i % AtlasCols) * GlyphWidth, (i / AtlasCols) * GlyphHeight
}

// rasterizeAtlas draws every glyph into a CPU image and returns it with
// the rune order used to place them.
func rasterizeAtlas() (*image.NRGBA, []rune) {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13
	runes := atlasRunes()
	if len(runes) > AtlasCols*AtlasRows {
		panic("render: atlas overflow")
	}

	for i, r := range runes {
		cx, cy := cellOrigin(i)
		if bc, ok := boxChars[r]; ok {
			drawBoxGlyph(img, cx, cy, bc[0], bc[1], bc[2], bc[3])
			continue
		}
		if p, ok := pictograms[r]; ok {
			drawPictogram(img, cx, cy, p)
			continue
		}
		if drawBlockGlyph(img, cx, cy, r) {
			continue
		}
		drawLetterGlyph(img, face, cx, cy, r)
	}
	return img, runes
}

// drawLetterGlyph draws r directly when it is ASCII, otherwise its
// canonical decomposition: the ASCII base letter and its combining marks.
func drawLetterGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	if r < utf8.RuneSelf {
		drawFontGlyph(img, face, cellX, cellY, r)
		return
	}
	d := norm.NFD.String(string(r))
	base, size := utf8.DecodeRuneInString(d)
	if base >= utf8.RuneSelf || size == len(d) {
		drawFontGlyph(img, face, cellX, cellY, r)
		return
	}
	drawFontGlyph(img, face, cellX, cellY, base)
	for _, m := range d[size:] {
		drawMark(img, cellX, cellY, m, unicode.IsUpper(base))
	}
}

// drawMark draws a combining mark over (or under) the letter in a cell.
func drawMark(img *image.NRGBA, cellX, cellY int, mark rune, upper bool) {
	w := color.NRGBA{255, 255, 255, 255}
	c := cellX + 7 // letter center column
	t := cellY + 4 // above lowercase
	if upper {
		t = cellY + 1
	}

	var px [][2]int
	switch mark {
	case '\u0300': // grave
		px = [][2]int{{c - 1, t}, {c, t + 1}}
	case '\u0301': // acute
		px = [][2]int{{c + 1, t}, {c, t + 1}}
	case '\u0302': // circumflex
		px = [][2]int{{c, t}, {c - 1, t + 1}, {c + 1, t + 1}}
	case '\u0303': // tilde
		px = [][2]int{{c - 2, t + 1}, {c - 1, t}, {c, t + 1}, {c + 1, t}}
	case '\u0308': // diaeresis
		px = [][2]int{{c - 2, t + 1}, {c + 2, t + 1}}
	case '\u030A': // ring
		px = [][2]int{{c, t - 1}, {c - 1, t}, {c + 1, t}, {c, t + 1}}
	case '\u0327': // cedilla
		b := cellY + 13
		px = [][2]int{{c, b}, {c + 1, b + 1}, {c, b + 2}}
	}
	for _, p := range px {
		img.SetNRGBA(p[0], p[1], w)
	}
}

// drawFontGlyph renders a single character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13), // centered horizontally, baseline at y+13
	}
	d.DrawString(string(r))
}

// boxChars maps box runes to single-line connection flags: {left, right, top, bottom}.
var boxChars = map[rune][4]bool{
	BoxV:  {false, false, true, true},
	BoxH:  {true, true, false, false},
	BoxTL: {false, true, false, true},
	BoxTR: {true, false, false, true},
	BoxBL: {false, true, true, false},
	BoxBR: {true, false, true, false},
}

// drawBoxGlyph draws a single-line box-drawing character.
// Lines are 2 pixels wide, centered in the 16x16 cell.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, left, right, top, bottom bool) {
	w := color.NRGBA{255, 255, 255, 255}
	cx := cellX + 7
	cy := cellY + 7

	if left {
		for x := cellX; x < cx+2; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if right {
		for x := cx; x < cellX+GlyphWidth; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if top {
		for y := cellY; y < cy+2; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
	if bottom {
		for y := cy; y < cellY+GlyphHeight; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
}

// drawBlockGlyph draws block elements and shading. It reports false
// for runes that are not blocks.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, r rune) bool {
	var on func(x, y int) bool
	switch r {
	case ShadeLight:
		on = func(x, y int) bool { return (x+y)%4 == 0 }
	case ShadeMedium:
		on = func(x, y int) bool { return (x+y)%2 == 0 }
	case ShadeDark:
		on = func(x, y int) bool { return (x+y)%4 != 0 }
	case BlockFull:
		on = func(x, y int) bool { return true }
	case BlockSquare:
		on = func(x, y int) bool { return x >= 4 && x < 12 && y >= 4 && y < 12 }
	default:
		return false
	}

	w := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if on(x, y) {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
	return true
}

// drawPictogram copies a '#' bitmap into the cell.
func drawPictogram(img *image.NRGBA, cellX, cellY int, rows []string) {
	w := color.NRGBA{255, 255, 255, 255}
	for y, row := range rows {
		if y >= GlyphHeight {
			break
		}
		for x, c := range row {
			if x >= GlyphWidth {
				break
			}
			if c == '#' {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
}
