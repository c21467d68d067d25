package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spacehole-rogue/spacecleanup/internal/game"
	"github.com/spacehole-rogue/spacecleanup/internal/world"
)

const (
	sparkBase  = 24.0 // pixels at scale 1
	rocketSize = 96.0
	ghostAlpha = 0.18
)

// Scene paints a session over the starfield: stage, tray, items,
// effects, then the HUD cell layer on top.
type Scene struct {
	renderer *GridRenderer
	buf      *CellBuffer
	width    int
	height   int
	button   world.Rect
}

// NewScene sizes the HUD grid to a width x height screen.
func NewScene(renderer *GridRenderer, width, height int) *Scene {
	return &Scene{
		renderer: renderer,
		buf:      NewCellBuffer(width/renderer.CellW, height/renderer.CellH),
		width:    width,
		height:   height,
	}
}

// Compose rebuilds the HUD cells from s. Call once per update.
func (sc *Scene) Compose(s *game.Session) {
	sc.button = ComposeHUD(sc.buf, s, sc.renderer.CellW, sc.renderer.CellH)
}

// RestartButton returns the modal's button and whether it is showing.
func (sc *Scene) RestartButton() (world.Rect, bool) {
	return sc.button, sc.button.W > 0
}

// Draw paints everything but the starfield.
func (sc *Scene) Draw(screen *ebiten.Image, s *game.Session) {
	r := sc.renderer
	stage := s.Stage()

	r.FillRect(screen, stage.Bounds, ColorBlue, 0.12)
	r.FillRect(screen, stage.Tray, ColorDarkGray, 0.35)
	r.StrokeRect(screen, stage.Tray, 2, ColorLightGray, 0.5)

	icons := make(map[string]itemIcon, len(s.Items()))
	for i, it := range s.Items() {
		icons[it.ID] = itemIcon{glyph: IconRune(it.Emoji, it.Label), tint: ItemTint(i)}
	}

	for _, t := range s.Targets() {
		sc.drawTarget(screen, t, icons[t.Accept])
	}

	var dragged *game.TrayItem
	drag := s.Drag()
	for _, it := range s.Items() {
		if drag != nil && drag.ItemID == it.ID {
			dragged = it
			continue
		}
		sc.drawItem(screen, it, icons[it.ID], false)
	}

	for _, sp := range s.Sparks() {
		size := sparkBase * sp.Scale()
		r.DrawGlyph(screen, PicSparkle, ColorYellow, sp.X-size/2, sp.Y-size/2, size, sp.Alpha())
	}

	if rk := s.Rocket(); rk != nil && !rk.Done() {
		x := float64(sc.width)/2 - rocketSize/2
		y := float64(sc.height) - rocketSize - 40 - rk.Lift()*float64(sc.height)
		r.DrawGlyph(screen, PicRocket, ColorWhite, x, y, rocketSize, 1)
	}

	if dragged != nil {
		sc.drawItem(screen, dragged, icons[dragged.ID], true)
	}

	if s.Popup() != nil {
		r.FillRect(screen, world.Rect{W: float64(sc.width), H: float64(sc.height)}, ColorBlack, 0.55)
	}
	r.Draw(screen, sc.buf)
}

type itemIcon struct {
	glyph rune
	tint  uint8
}

func (sc *Scene) drawTarget(screen *ebiten.Image, t *game.Target, icon itemIcon) {
	r := sc.renderer
	rect := t.Rect
	rect.Y += t.ShakeOffset()

	border := uint8(ColorLightCyan)
	if t.Filled {
		border = ColorLightGreen
	}
	r.FillRect(screen, rect, ColorBlue, 0.35)
	r.StrokeRect(screen, rect, 3, border, 0.9)

	if !t.Filled {
		ghost := rect.H * 0.45
		cx, _ := rect.Center()
		r.DrawGlyph(screen, icon.glyph, icon.tint, cx-ghost/2, rect.Y+12, ghost, ghostAlpha)
	}

	label := float64(TextWidth(t.Label) * r.CellW)
	r.DrawText(screen, t.Label, ColorWhite, rect.X+(rect.W-label)/2, rect.Bottom()-float64(r.CellH)-8)
}

func (sc *Scene) drawItem(screen *ebiten.Image, it *game.TrayItem, icon itemIcon, lifted bool) {
	r := sc.renderer
	rect := it.Rect
	if !it.Placed {
		r.FillRect(screen, rect, ColorDarkGray, 0.6)
		outline := uint8(ColorLightGray)
		if lifted {
			outline = ColorYellow
		}
		r.StrokeRect(screen, rect, 2, outline, 0.8)
	}
	size := rect.W * 0.7
	x, y := rect.Center()
	r.DrawGlyph(screen, icon.glyph, icon.tint, x-size/2, y-size/2, size, 1)
}
