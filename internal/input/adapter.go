// Package input turns mouse and touch state into drag sessions on the board.
package input

import (
	"github.com/spacehole-rogue/spacecleanup/internal/game"
)

// Board is the drag surface an Adapter drives; *game.Session implements it.
type Board interface {
	ItemAt(x, y float64) (string, bool)
	BeginDrag(itemID string, src game.Source, x, y float64) error
	UpdateDrag(x, y float64)
	Drop(x, y float64) game.Outcome
	Drag() *game.DragSession
}

// Pointer is one frame of a single pointing device.
type Pointer struct {
	X, Y         float64
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Adapter follows one device through press, move and release and maps
// them onto BeginDrag, UpdateDrag and Drop. Mouse and touch each get
// their own adapter; the board refuses whichever starts second.
type Adapter struct {
	source       game.Source
	holding      bool
	lastX, lastY float64
}

// NewAdapter returns an adapter tagging its drags with src.
func NewAdapter(src game.Source) *Adapter {
	return &Adapter{source: src}
}

// Holding reports whether this adapter owns the board's drag session.
func (a *Adapter) Holding() bool { return a.holding }

// Handle applies one frame of pointer state. It returns the drop
// outcome and true on the frame a held item is released.
func (a *Adapter) Handle(b Board, p Pointer) (game.Outcome, bool) {
	if p.Pressed || p.JustPressed {
		a.lastX, a.lastY = p.X, p.Y
	}

	if p.JustPressed && !a.holding {
		if id, ok := b.ItemAt(p.X, p.Y); ok {
			if err := b.BeginDrag(id, a.source, p.X, p.Y); err == nil {
				a.holding = true
			}
		}
		return game.Outcome{}, false
	}

	if !a.holding {
		return game.Outcome{}, false
	}
	// A restart clears the board's drag; another device may own the
	// next one. Let go without touching it.
	if d := b.Drag(); d == nil || d.Source != a.source {
		a.holding = false
		return game.Outcome{}, false
	}
	if p.Pressed && !p.JustReleased {
		b.UpdateDrag(p.X, p.Y)
		return game.Outcome{}, false
	}

	a.holding = false
	return b.Drop(a.lastX, a.lastY), true
}
