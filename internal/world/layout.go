package world

// Stage describes where targets and tray items go on screen.
// Targets sit on a horizontal band near the top of Bounds; unplaced
// items sit in a row inside Tray.
type Stage struct {
	Bounds    Rect
	Tray      Rect
	TargetW   float64
	TargetH   float64
	TargetTop float64 // offset of the target band below Bounds.Y
	ItemSize  float64 // items are square
}

// Fraction of the stage width covered by the band of target centers.
const (
	bandStart = 0.10
	bandSpan  = 0.80
)

// DefaultStage lays out a stage for a screen of the given size.
func DefaultStage(screenW, screenH int) Stage {
	w := float64(screenW)
	h := float64(screenH)
	return Stage{
		Bounds:    Rect{X: 0, Y: 48, W: w, H: h * 0.62},
		Tray:      Rect{X: 0, Y: h - 168, W: w, H: 120},
		TargetW:   150,
		TargetH:   120,
		TargetTop: 36,
		ItemSize:  88,
	}
}

// TargetSlots returns n target rects evenly spaced along the band.
// A single target is centered.
func (s Stage) TargetSlots(n int) []Rect {
	slots := make([]Rect, n)
	y := s.Bounds.Y + s.TargetTop
	for i := range slots {
		frac := 0.5
		if n > 1 {
			frac = bandStart + float64(i)*bandSpan/float64(n-1)
		}
		cx := s.Bounds.X + frac*s.Bounds.W
		slots[i] = Rect{X: cx - s.TargetW/2, Y: y, W: s.TargetW, H: s.TargetH}
	}
	return slots
}

// TraySlots returns n item home rects evenly spaced across the tray.
func (s Stage) TraySlots(n int) []Rect {
	slots := make([]Rect, n)
	if n == 0 {
		return slots
	}
	step := s.Tray.W / float64(n)
	for i := range slots {
		cell := Rect{X: s.Tray.X + float64(i)*step, Y: s.Tray.Y, W: step, H: s.Tray.H}
		slots[i] = cell.Centered(s.ItemSize, s.ItemSize)
	}
	return slots
}
