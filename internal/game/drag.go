package game

import (
	"context"
	"fmt"

	"github.com/spacehole-rogue/spacecleanup/internal/logger"
)

// Source tells which input path started a drag.
type Source uint8

const (
	SourceMouse Source = iota // desktop drag-and-drop
	SourceTouch               // pointer fallback for touch screens
)

func (src Source) String() string {
	if src == SourceTouch {
		return "touch"
	}
	return "mouse"
}

// DragSession is the single in-progress drag. Offset is where inside
// the item the pointer grabbed it.
type DragSession struct {
	ItemID           string
	OffsetX, OffsetY float64
	Source           Source
}

// DropAttempt is a normalized drop from either input path.
type DropAttempt struct {
	ItemID string
	X, Y   float64
}

// OutcomeKind classifies a drop.
type OutcomeKind uint8

const (
	Miss     OutcomeKind = iota // no target under the drop point
	Match                       // first target under the point accepts the item
	Mismatch                    // first target under the point wants another item
)

func (k OutcomeKind) String() string {
	switch k {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	default:
		return "miss"
	}
}

// Outcome is the result of resolving one drop.
type Outcome struct {
	Kind     OutcomeKind
	TargetID string // empty on Miss
}

// ItemAt returns the id of the topmost draggable item under (x, y).
func (s *Session) ItemAt(x, y float64) (string, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		it := s.items[i]
		if it.Draggable() && it.Rect.Contains(x, y) {
			return it.ID, true
		}
	}
	return "", false
}

// BeginDrag opens the drag session for itemID grabbed at (x, y).
// Only one drag may be active; a second start is rejected.
func (s *Session) BeginDrag(itemID string, src Source, x, y float64) error {
	if s.phase != PhasePlaying {
		return ErrNotPlaying
	}
	if s.drag != nil {
		return fmt.Errorf("%w: holding %s", ErrDragActive, s.drag.ItemID)
	}
	it := s.item(itemID)
	if it == nil {
		return fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
	}
	if it.Placed {
		return fmt.Errorf("%w: %q", ErrItemPlaced, itemID)
	}
	s.drag = &DragSession{
		ItemID:  itemID,
		OffsetX: x - it.Rect.X,
		OffsetY: y - it.Rect.Y,
		Source:  src,
	}
	return nil
}

// UpdateDrag moves the dragged item so it follows the pointer.
func (s *Session) UpdateDrag(x, y float64) {
	if s.drag == nil {
		return
	}
	if it := s.item(s.drag.ItemID); it != nil {
		it.Rect = it.Rect.MoveTo(x-s.drag.OffsetX, y-s.drag.OffsetY)
	}
}

// Drop closes the drag session at (x, y) and resolves it. Anything but
// a match sends the item back to its tray slot.
func (s *Session) Drop(x, y float64) Outcome {
	if s.drag == nil {
		return Outcome{Kind: Miss}
	}
	id := s.drag.ItemID
	s.drag = nil

	out := s.ResolveDrop(DropAttempt{ItemID: id, X: x, Y: y})
	if it := s.item(id); it != nil && !it.Placed {
		it.Rect = it.Home
	}
	return out
}

// CancelDrag abandons the drag session and returns the item to the tray.
func (s *Session) CancelDrag() {
	if s.drag == nil {
		return
	}
	if it := s.item(s.drag.ItemID); it != nil && !it.Placed {
		it.Rect = it.Home
	}
	s.drag = nil
}

// ResolveDrop hit-tests a drop against the targets in creation order.
// The first target containing the point decides the outcome; later
// targets are not considered even if they would accept the item.
func (s *Session) ResolveDrop(a DropAttempt) Outcome {
	if s.phase != PhasePlaying {
		return Outcome{Kind: Miss}
	}
	it := s.item(a.ItemID)
	if it == nil || it.Placed {
		return Outcome{Kind: Miss}
	}

	for _, t := range s.targets {
		if !t.Rect.Contains(a.X, a.Y) {
			continue
		}
		if t.Accept == a.ItemID {
			s.match(it, t)
			return Outcome{Kind: Match, TargetID: t.ID}
		}
		s.mismatch(it, t)
		return Outcome{Kind: Mismatch, TargetID: t.ID}
	}

	s.log.Debug(context.Background(), "drop missed",
		logger.String("round", s.roundID),
		logger.String("item", a.ItemID),
		logger.Float64("x", a.X), logger.Float64("y", a.Y))
	return Outcome{Kind: Miss}
}

func (s *Session) match(it *TrayItem, t *Target) {
	it.Rect = t.Rect.Centered(it.Rect.W, it.Rect.H)
	it.Placed = true
	t.Filled = true

	s.score++
	s.energy = min(100, s.energy+s.energyStep())

	s.sound.Play(ToneCorrect)
	s.spawnSpark()
	s.Comms.Add(fmt.Sprintf("%s guardado. Energia %d%%.", it.Label, s.energy), MsgSuccess)
	s.log.Debug(context.Background(), "item placed",
		logger.String("round", s.roundID),
		logger.String("item", it.ID),
		logger.String("target", t.ID),
		logger.Int("score", s.score))

	if s.score >= len(s.items) {
		s.win()
	}
}

func (s *Session) mismatch(it *TrayItem, t *Target) {
	t.shake = shakeTicks
	s.haptics.Vibrate(MismatchPulse)
	s.Comms.Add(fmt.Sprintf("%s não vai em %s.", it.Label, t.Label), MsgWarning)
	s.log.Debug(context.Background(), "wrong target",
		logger.String("round", s.roundID),
		logger.String("item", it.ID),
		logger.String("target", t.ID))
}

func (s *Session) item(id string) *TrayItem {
	for _, it := range s.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}
