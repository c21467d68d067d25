package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/spacehole-rogue/spacecleanup/internal/game"
)

// SampleRate is shared by synthesis and the ebiten audio context.
const SampleRate = beep.SampleRate(48000)

// Envelope shape: exponential rise from floorGain to peakGain over
// attack, exponential fall back to floorGain at the tone's duration,
// oscillator cut tail later.
const (
	floorGain = 0.0001
	peakGain  = 0.12
	attack    = 10 * time.Millisecond
	tail      = 20 * time.Millisecond
)

// envelope applies the attack/decay gain curve to a streamer.
type envelope struct {
	beep.Streamer
	attack   int // samples
	decayEnd int // samples
	pos      int
}

func newEnvelope(s beep.Streamer, sr beep.SampleRate, d time.Duration) *envelope {
	return &envelope{Streamer: s, attack: sr.N(attack), decayEnd: sr.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.Streamer.Stream(samples)
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

// gain interpolates exponentially between floorGain and peakGain.
func (e *envelope) gain(pos int) float64 {
	switch {
	case pos < e.attack:
		return expRamp(floorGain, peakGain, float64(pos)/float64(e.attack))
	case pos < e.decayEnd:
		span := e.decayEnd - e.attack
		if span <= 0 {
			return floorGain
		}
		return expRamp(peakGain, floorGain, float64(pos-e.attack)/float64(span))
	default:
		return floorGain
	}
}

func expRamp(from, to, t float64) float64 {
	return from * math.Pow(to/from, t)
}

// oscillator returns the beep generator for a wave shape.
func oscillator(sr beep.SampleRate, t game.Tone) (beep.Streamer, error) {
	switch t.Wave {
	case game.WaveSawtooth:
		return generators.SawtoothTone(sr, t.Freq)
	default:
		return generators.SineTone(sr, t.Freq)
	}
}

// Render synthesizes t as 16-bit little-endian stereo PCM. volume is
// beep's exponential volume (0 is unchanged, -1 halves, ...).
func Render(t game.Tone, sr beep.SampleRate, volume float64) ([]byte, error) {
	osc, err := oscillator(sr, t)
	if err != nil {
		return nil, fmt.Errorf("tone %.0fHz: %w", t.Freq, err)
	}
	total := sr.N(t.Duration + tail)
	src := &effects.Volume{
		Streamer: newEnvelope(beep.Take(total, osc), sr, t.Duration),
		Base:     2,
		Volume:   volume,
	}

	pcm := make([]byte, 0, total*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := src.Stream(buf)
		for _, s := range buf[:n] {
			for ch := 0; ch < 2; ch++ {
				v := int16(math.Max(-1, math.Min(1, s[ch])) * math.MaxInt16)
				pcm = append(pcm, byte(v), byte(v>>8))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return pcm, nil
}
