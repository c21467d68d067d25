// Package audio synthesizes feedback tones and plays them through ebiten.
// Playback is best effort: any failure is logged at debug level and dropped.
package audio

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spacehole-rogue/spacecleanup/internal/game"
	"github.com/spacehole-rogue/spacecleanup/internal/logger"
)

// Player implements game.Sound.
type Player struct {
	ctx    *audio.Context
	log    logger.Logger
	volume float64
	cache  map[game.Tone][]byte
	active []*audio.Player
}

// NewContext returns ebiten's audio context, creating it if needed.
// Creation can panic on platforms without an audio device; that is
// reported as an error.
func NewContext() (ctx *audio.Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			ctx, err = nil, fmt.Errorf("audio context: %v", r)
		}
	}()
	if c := audio.CurrentContext(); c != nil {
		return c, nil
	}
	return audio.NewContext(int(SampleRate)), nil
}

// NewPlayer returns a tone player on ctx at the given beep volume
// (0 is unchanged). A nil ctx yields a player that stays silent.
func NewPlayer(ctx *audio.Context, log logger.Logger, volume float64) *Player {
	if log == nil {
		log = logger.Nop()
	}
	return &Player{ctx: ctx, log: log, volume: volume, cache: make(map[game.Tone][]byte)}
}

// pcm returns the rendered samples for t, rendering on first use.
func (p *Player) pcm(t game.Tone) ([]byte, error) {
	if pcm, ok := p.cache[t]; ok {
		return pcm, nil
	}
	pcm, err := Render(t, SampleRate, p.volume)
	if err != nil {
		return nil, err
	}
	p.cache[t] = pcm
	return pcm, nil
}

// Play starts t without blocking.
func (p *Player) Play(t game.Tone) {
	if p == nil || p.ctx == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Debug(context.Background(), "tone dropped", logger.Any("panic", r))
		}
	}()

	pcm, err := p.pcm(t)
	if err != nil {
		p.log.Debug(context.Background(), "tone dropped", logger.Error(err))
		return
	}

	pl := p.ctx.NewPlayerFromBytes(pcm)
	pl.Play()
	p.keep(pl)
}

// keep holds a reference to playing players and forgets finished ones.
func (p *Player) keep(pl *audio.Player) {
	live := p.active[:0]
	for _, a := range p.active {
		if a.IsPlaying() {
			live = append(live, a)
		}
	}
	p.active = append(live, pl)
}
