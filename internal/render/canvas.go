package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// StarCanvas adapts an ebiten screen to starfield.Canvas. Target is
// swapped in before each frame.
type StarCanvas struct {
	Target *ebiten.Image
	pixel  *ebiten.Image
	verts  []ebiten.Vertex
}

// NewStarCanvas creates a canvas with no target yet.
func NewStarCanvas() *StarCanvas {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &StarCanvas{pixel: pixel}
}

func (c *StarCanvas) Clear() {
	c.Target.Clear()
}

// VerticalGradient fills the target with a two-stop gradient.
func (c *StarCanvas) VerticalGradient(top, bottom color.NRGBA) {
	b := c.Target.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	c.verts = append(c.verts[:0],
		gradientVertex(0, 0, top),
		gradientVertex(w, 0, top),
		gradientVertex(0, h, bottom),
		gradientVertex(w, h, bottom),
	)
	indices := []uint16{0, 1, 2, 1, 3, 2}
	c.Target.DrawTriangles(c.verts, indices, c.pixel, &ebiten.DrawTrianglesOptions{})
}

func gradientVertex(x, y float32, clr color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: x, DstY: y,
		SrcX: 0.5, SrcY: 0.5,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}

// FillSquare paints a white square of side size at top-left (x, y).
func (c *StarCanvas) FillSquare(x, y, size, alpha float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	c.Target.DrawImage(c.pixel, &op)
}
