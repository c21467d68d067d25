package render

import (
	"fmt"

	"github.com/spacehole-rogue/spacecleanup/internal/game"
	"github.com/spacehole-rogue/spacecleanup/internal/world"
)

const (
	title       = "Space Cleanup"
	buttonLabel = "[ Jogar de novo ]"
	commsMax    = 2 // visible comms lines above the instructions
	hurryAt     = 10
	barWidth    = 20
	modalMinW   = 36
	modalH      = 9
)

// ComposeHUD writes the cell layer for s into buf: status line, energy
// bar, comms feed, instructions and, after a round ends, the modal.
// It returns the restart button in pixels, or a zero Rect when no modal
// is shown.
func ComposeHUD(buf *CellBuffer, s *game.Session, cellW, cellH int) world.Rect {
	buf.Clear()

	// Status line
	buf.WriteString(2, 0, title, ColorWhite, ColorBlack)
	timeClr := uint8(ColorLightCyan)
	if s.Phase() == game.PhasePlaying && s.TimeRemaining() <= hurryAt {
		timeClr = ColorLightRed
	}
	status := fmt.Sprintf("Tempo: %02ds", s.TimeRemaining())
	score := fmt.Sprintf("Itens: %d/%d", s.Score(), s.ItemCount())
	buf.WriteString(buf.Cols-TextWidth(status)-TextWidth(score)-6, 0, status, timeClr, ColorBlack)
	buf.WriteString(buf.Cols-TextWidth(score)-2, 0, score, ColorLightGreen, ColorBlack)

	drawEnergyBar(buf, 2, 1, "Energia", s.Energy(), 100, ColorYellow)

	// Comms feed, newest last
	commsRow := buf.Rows - 1 - commsMax
	for i, msg := range s.Comms.Recent(commsMax) {
		buf.WriteString(2, commsRow+i, msg.Text, MessageColor(msg.Priority), ColorBlack)
	}

	buf.WriteString(2, buf.Rows-1, "Arraste cada item até o alvo certo  R: Reiniciar  ESC: Sair",
		ColorDarkGray, ColorBlack)

	if p := s.Popup(); p != nil {
		return composeModal(buf, p, s.Phase(), cellW, cellH)
	}
	return world.Rect{}
}

// drawEnergyBar shows a single-value bar with its value.
func drawEnergyBar(buf *CellBuffer, x, y int, label string, val, max int, clr uint8) {
	if max == 0 {
		max = 1
	}
	filled := barWidth * val / max

	labelClr := uint8(ColorLightGray)
	if val >= max {
		labelClr = ColorLightGreen
	}
	buf.WriteString(x, y, label, labelClr, ColorBlack)

	for i := 0; i < barWidth; i++ {
		if i < filled {
			buf.Set(x+8+i, y, BlockFull, clr, ColorBlack)
		} else {
			buf.Set(x+8+i, y, ShadeLight, ColorDarkGray, ColorBlack)
		}
	}
	info := fmt.Sprintf("%3d%%", val*100/max)
	buf.WriteString(x+9+barWidth, y, info, labelClr, ColorBlack)
}

// composeModal centers the end-of-round box and returns its button rect.
func composeModal(buf *CellBuffer, p *game.Popup, phase game.Phase, cellW, cellH int) world.Rect {
	w := max(modalMinW, TextWidth(p.Title)+6, TextWidth(p.Text)+6)
	x := (buf.Cols - w) / 2
	y := (buf.Rows - modalH) / 2

	border := uint8(ColorLightCyan)
	titleClr := uint8(ColorYellow)
	if phase == game.PhaseLost {
		border = ColorLightRed
		titleClr = ColorLightRed
	}
	buf.Box(x, y, w, modalH, border, ColorBlue)

	centered := func(row int, s string, fg, bg uint8) int {
		col := x + (w-TextWidth(s))/2
		buf.WriteString(col, row, s, fg, bg)
		return col
	}
	centered(y+2, p.Title, titleClr, ColorBlue)
	centered(y+4, p.Text, ColorWhite, ColorBlue)
	col := centered(y+6, buttonLabel, ColorBlack, ColorLightCyan)

	return world.Rect{
		X: float64(col * cellW),
		Y: float64((y + 6) * cellH),
		W: float64(TextWidth(buttonLabel) * cellW),
		H: float64(cellH),
	}
}
