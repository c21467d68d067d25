package game

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/spacehole-rogue/spacecleanup/internal/logger"
	"github.com/spacehole-rogue/spacecleanup/internal/world"
)

// TicksPerSecond is the rate Update is called at (ebiten's default TPS).
const TicksPerSecond = 60

const (
	commsSize  = 40
	commsWidth = 48
)

// Drag errors. A rejected BeginDrag leaves the session untouched.
var (
	ErrNotPlaying  = errors.New("round is not in progress")
	ErrDragActive  = errors.New("another drag is in progress")
	ErrUnknownItem = errors.New("unknown item")
	ErrItemPlaced  = errors.New("item already placed")
)

// Phase is the round state: Idle -> Playing -> Won | Lost, and Playing
// again through Restart.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "idle"
	}
}

// Settings fixes what a round looks like.
type Settings struct {
	Duration int // seconds
	Items    []world.Item
	Stage    world.Stage
}

// Target is a zone accepting exactly one item.
type Target struct {
	ID     string
	Accept string // item id this zone takes
	Label  string
	Rect   world.Rect
	Filled bool
	shake  int // ticks of shake feedback left
}

// ShakeOffset returns the current vertical draw offset of the target.
func (t *Target) ShakeOffset() float64 { return shakeOffset(t.shake) }

// TrayItem is a catalog item on screen.
type TrayItem struct {
	world.Item
	Home   world.Rect // slot in the tray
	Rect   world.Rect // where it is drawn now
	Placed bool
}

// Draggable reports whether the item can still be picked up.
func (it *TrayItem) Draggable() bool { return !it.Placed }

// Popup is the end-of-round modal.
type Popup struct {
	Title string
	Text  string
}

// Session owns one game: state counters, layout, the drag session and
// transient effects. It is not safe for concurrent use; everything runs
// on the game loop.
type Session struct {
	settings Settings
	sound    Sound
	haptics  Haptics
	log      logger.Logger
	rng      *rand.Rand

	phase         Phase
	roundID       string
	timeRemaining int
	score         int
	energy        int

	targets []*Target
	items   []*TrayItem
	drag    *DragSession
	clock   countdown

	sparks []Spark
	rocket *Rocket
	popup  *Popup

	// Comms is the event feed shown in the HUD.
	Comms *MessageLog
}

// Option configures a Session.
type Option func(*Session)

// WithSound sets the tone player.
func WithSound(snd Sound) Option {
	return func(s *Session) {
		if snd != nil {
			s.sound = snd
		}
	}
}

// WithHaptics sets the vibration device.
func WithHaptics(h Haptics) Option {
	return func(s *Session) {
		if h != nil {
			s.haptics = h
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSeed makes spark placement deterministic.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed>>16|5))
	}
}

// NewSession creates an idle session. Call Start to begin the first round.
func NewSession(settings Settings, opts ...Option) *Session {
	seed := uint64(time.Now().UnixNano())
	s := &Session{
		settings: settings,
		sound:    NopSound{},
		haptics:  NopHaptics{},
		log:      logger.Nop(),
		rng:      rand.New(rand.NewPCG(seed, seed>>16|5)),
		Comms:    NewMessageLog(commsSize, commsWidth),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start resets counters, rebuilds targets and tray, and starts the
// countdown. It is also the restart action from Won or Lost.
func (s *Session) Start() {
	s.clock.stop()

	s.roundID = uuid.NewString()
	s.score = 0
	s.energy = 0
	s.timeRemaining = s.settings.Duration
	s.drag = nil
	s.sparks = s.sparks[:0]
	s.rocket = nil
	s.popup = nil
	s.buildLayout()

	s.phase = PhasePlaying
	s.clock.start()

	s.Comms.Clear()
	s.Comms.Add("Arrume a nave antes da decolagem!", MsgInfo)
	s.log.Info(context.Background(), "round started",
		logger.String("round", s.roundID),
		logger.Int("duration", s.settings.Duration),
		logger.Int("items", len(s.settings.Items)))
}

// Restart begins a fresh round from any phase.
func (s *Session) Restart() { s.Start() }

func (s *Session) buildLayout() {
	n := len(s.settings.Items)
	targetSlots := s.settings.Stage.TargetSlots(n)
	traySlots := s.settings.Stage.TraySlots(n)

	s.targets = make([]*Target, n)
	s.items = make([]*TrayItem, n)
	for i, it := range s.settings.Items {
		s.targets[i] = &Target{
			ID:     fmt.Sprintf("t%d", i),
			Accept: it.ID,
			Label:  it.Label,
			Rect:   targetSlots[i],
		}
		s.items[i] = &TrayItem{Item: it, Home: traySlots[i], Rect: traySlots[i]}
	}
}

// Update advances one game-loop frame: effects age and, once per
// second of frames, the countdown ticks.
func (s *Session) Update() {
	s.ageEffects()
	if s.clock.advance() {
		s.Tick()
	}
}

// Tick is one second of countdown. It does nothing unless a round is
// in progress with its countdown running.
func (s *Session) Tick() {
	if s.phase != PhasePlaying || !s.clock.running {
		return
	}
	s.timeRemaining--
	if s.timeRemaining <= 0 {
		s.timeRemaining = 0
		s.clock.stop()
		s.lose()
		return
	}
	if s.timeRemaining == 10 {
		s.Comms.Add("Dez segundos para a decolagem!", MsgWarning)
	}
}

func (s *Session) win() {
	s.clock.stop()
	s.phase = PhaseWon
	s.popup = &Popup{
		Title: "🎉 Missão cumprida!",
		Text:  "A nave está pronta para decolar! Muito bem!",
	}
	s.rocket = &Rocket{}
	s.sound.Play(ToneWin)
	s.Comms.Add("Tudo no lugar. Decolando!", MsgSuccess)
	s.log.Info(context.Background(), "round won",
		logger.String("round", s.roundID),
		logger.Int("time_remaining", s.timeRemaining))
}

func (s *Session) lose() {
	s.clock.stop()
	s.phase = PhaseLost
	s.popup = &Popup{
		Title: "⏳ Tempo esgotado",
		Text:  "Tente novamente — você quase conseguiu!",
	}
	s.sound.Play(ToneLose)
	s.Comms.Add("Tempo esgotado.", MsgCritical)
	s.log.Info(context.Background(), "round lost",
		logger.String("round", s.roundID),
		logger.Int("score", s.score))
}

func (s *Session) ageEffects() {
	live := s.sparks[:0]
	for _, sp := range s.sparks {
		sp.age++
		if sp.age < sparkTicks {
			live = append(live, sp)
		}
	}
	s.sparks = live

	for _, t := range s.targets {
		if t.shake > 0 {
			t.shake--
		}
	}

	if s.rocket != nil {
		s.rocket.age++
		if s.rocket.Done() {
			s.rocket = nil
		}
	}
}

func (s *Session) spawnSpark() {
	b := s.settings.Stage.Bounds
	s.sparks = append(s.sparks, Spark{
		X: b.X + (0.2+s.rng.Float64()*0.6)*b.W,
		Y: b.Y + (0.3+s.rng.Float64()*0.3)*b.H,
	})
}

// energyStep is the energy gained per correct placement.
func (s *Session) energyStep() int {
	return int(math.Round(100 / float64(len(s.settings.Items))))
}

// Phase returns the round state.
func (s *Session) Phase() Phase { return s.phase }

// RoundID identifies the current round in logs.
func (s *Session) RoundID() string { return s.roundID }

// TimeRemaining returns the seconds left on the countdown.
func (s *Session) TimeRemaining() int { return s.timeRemaining }

// Score returns the number of items placed correctly this round.
func (s *Session) Score() int { return s.score }

// Energy returns the energy gauge, 0..100.
func (s *Session) Energy() int { return s.energy }

// ItemCount returns the catalog size.
func (s *Session) ItemCount() int { return len(s.settings.Items) }

// Targets returns the target zones in creation order.
func (s *Session) Targets() []*Target { return s.targets }

// Items returns the tray items in catalog order.
func (s *Session) Items() []*TrayItem { return s.items }

// Drag returns the active drag session, or nil.
func (s *Session) Drag() *DragSession { return s.drag }

// Sparks returns the live spark effects.
func (s *Session) Sparks() []Spark { return s.sparks }

// Rocket returns the win launch while it is flying, or nil.
func (s *Session) Rocket() *Rocket { return s.rocket }

// Popup returns the end-of-round modal, or nil while playing.
func (s *Session) Popup() *Popup { return s.popup }

// Stage returns the layout the session was built with.
func (s *Session) Stage() world.Stage { return s.settings.Stage }
