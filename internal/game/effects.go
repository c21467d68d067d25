package game

import (
	"math"
	"time"
)

// Wave is an oscillator shape for synthesized tones.
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSawtooth
)

// Tone describes a short synthesized beep.
type Tone struct {
	Freq     float64 // Hz
	Duration time.Duration
	Wave     Wave
}

// Feedback tones.
var (
	ToneCorrect = Tone{Freq: 880, Duration: 60 * time.Millisecond, Wave: WaveSine}
	ToneWin     = Tone{Freq: 1200, Duration: 180 * time.Millisecond, Wave: WaveSine}
	ToneLose    = Tone{Freq: 220, Duration: 400 * time.Millisecond, Wave: WaveSawtooth}
)

// MismatchPulse is the haptic pulse length on a wrong drop.
const MismatchPulse = 40 * time.Millisecond

// Sound plays tones. Implementations must not block and must swallow
// their own failures.
type Sound interface {
	Play(t Tone)
}

// Haptics triggers a vibration pulse. Same failure rules as Sound.
type Haptics interface {
	Vibrate(d time.Duration)
}

// NopSound is a Sound that plays nothing.
type NopSound struct{}

func (NopSound) Play(Tone) {}

// NopHaptics is a Haptics that does nothing.
type NopHaptics struct{}

func (NopHaptics) Vibrate(time.Duration) {}

// Effect lifetimes in update ticks (TicksPerSecond per second).
const (
	sparkTicks  = 42  // 700 ms
	shakeTicks  = 17  // 280 ms
	rocketTicks = 132 // 2200 ms

	shakeDepth = 6.0 // pixels the target lifts at the peak of a shake
)

// Spark is the burst shown after a correct drop.
type Spark struct {
	X, Y float64 // center in screen pixels
	age  int
}

// Progress returns how far the spark is through its life, 0..1.
func (s Spark) Progress() float64 { return float64(s.age) / sparkTicks }

// Scale grows from 0.6 to 3 over the spark's life.
func (s Spark) Scale() float64 { return 0.6 + 2.4*s.Progress() }

// Alpha fades from 1 to 0 over the spark's life.
func (s Spark) Alpha() float64 { return 1 - s.Progress() }

// Rocket is the launch shown on a win.
type Rocket struct {
	age int
}

// Done reports whether the ascent has finished.
func (r *Rocket) Done() bool { return r.age >= rocketTicks }

// Lift returns how far the rocket has risen, as a fraction of the
// screen height: 0 at launch, 1.2 at the end.
func (r *Rocket) Lift() float64 {
	t := math.Min(1, float64(r.age)/rocketTicks)
	return 1.2 * launchCurve(t)
}

// launchCurve evaluates the cubic bezier (0.2,0.9)-(0.2,1) timing curve at t.
func launchCurve(t float64) float64 {
	const x1, y1, x2, y2 = 0.2, 0.9, 0.2, 1.0
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	bez := func(u, p1, p2 float64) float64 {
		v := 1 - u
		return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
	}
	// Solve x(u) = t by bisection; x is monotonic for these control points.
	lo, hi := 0.0, 1.0
	for range 30 {
		mid := (lo + hi) / 2
		if bez(mid, x1, x2) < t {
			lo = mid
		} else {
			hi = mid
		}
	}
	return bez((lo+hi)/2, y1, y2)
}

// shakeOffset returns the vertical offset of a target that has
// remaining shake ticks left: 0 -> -shakeDepth -> 0.
func shakeOffset(remaining int) float64 {
	if remaining <= 0 {
		return 0
	}
	p := 1 - float64(remaining)/shakeTicks
	return -shakeDepth * (1 - math.Abs(2*p-1))
}
