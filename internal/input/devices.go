package input

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spacehole-rogue/spacecleanup/internal/logger"
)

// ReadMouse samples the left mouse button.
func ReadMouse() Pointer {
	x, y := ebiten.CursorPosition()
	return Pointer{
		X:            float64(x),
		Y:            float64(y),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// TouchReader follows the first finger down until it lifts; other
// fingers are ignored meanwhile.
type TouchReader struct {
	id     ebiten.TouchID
	active bool
	x, y   float64
}

// Read samples the followed touch.
func (r *TouchReader) Read() Pointer {
	if !r.active {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return Pointer{}
		}
		r.id = ids[0]
		r.active = true
		r.sample()
		return Pointer{X: r.x, Y: r.y, Pressed: true, JustPressed: true}
	}

	if inpututil.IsTouchJustReleased(r.id) {
		r.active = false
		return Pointer{X: r.x, Y: r.y, JustReleased: true}
	}
	r.sample()
	return Pointer{X: r.x, Y: r.y, Pressed: true}
}

func (r *TouchReader) sample() {
	x, y := ebiten.TouchPosition(r.id)
	r.x, r.y = float64(x), float64(y)
}

// Vibrator implements game.Haptics with ebiten's device vibration.
// Platforms without a vibrator ignore the call.
type Vibrator struct {
	Log logger.Logger
}

func (v Vibrator) Vibrate(d time.Duration) {
	defer func() {
		if r := recover(); r != nil && v.Log != nil {
			v.Log.Debug(context.Background(), "vibration dropped", logger.Any("panic", r))
		}
	}()
	ebiten.Vibrate(&ebiten.VibrateOptions{Duration: d, Magnitude: 1})
}
