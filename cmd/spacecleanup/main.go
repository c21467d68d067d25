package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spacehole-rogue/spacecleanup/internal/audio"
	"github.com/spacehole-rogue/spacecleanup/internal/config"
	"github.com/spacehole-rogue/spacecleanup/internal/game"
	"github.com/spacehole-rogue/spacecleanup/internal/input"
	"github.com/spacehole-rogue/spacecleanup/internal/logger"
	"github.com/spacehole-rogue/spacecleanup/internal/render"
	"github.com/spacehole-rogue/spacecleanup/internal/starfield"
	"github.com/spacehole-rogue/spacecleanup/internal/world"
)

const (
	title = "Space Cleanup"

	cellWidth  = 16
	cellHeight = 16
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in session.
type Game struct {
	width   int
	height  int
	log     logger.Logger
	session *game.Session
	stars   *starfield.Field
	canvas  *render.StarCanvas
	scene   *render.Scene

	mouse   *input.Adapter
	touch   *input.Adapter
	touches input.TouchReader
}

func NewGame(cfg *config.Config, log logger.Logger) *Game {
	ctx := context.Background()
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var snd game.Sound = game.NopSound{}
	if !cfg.Mute {
		actx, err := audio.NewContext()
		if err != nil {
			log.Warn(ctx, "audio unavailable, playing silent", logger.Error(err))
		} else {
			snd = audio.NewPlayer(actx, log.Named("audio"), cfg.Volume)
		}
	}

	session := game.NewSession(game.Settings{
		Duration: cfg.Duration,
		Items:    cfg.Items,
		Stage:    world.DefaultStage(cfg.Width, cfg.Height),
	},
		game.WithSound(snd),
		game.WithHaptics(input.Vibrator{Log: log.Named("haptics")}),
		game.WithLogger(log.Named("game")),
		game.WithSeed(seed),
	)

	atlas := render.NewFontAtlas()
	renderer := render.NewGridRenderer(atlas, cellWidth, cellHeight)

	g := &Game{
		width:   cfg.Width,
		height:  cfg.Height,
		log:     log,
		session: session,
		stars:   starfield.New(cfg.Width, cfg.Height, seed),
		canvas:  render.NewStarCanvas(),
		scene:   render.NewScene(renderer, cfg.Width, cfg.Height),
		mouse:   input.NewAdapter(game.SourceMouse),
		touch:   input.NewAdapter(game.SourceTouch),
	}

	session.Start()
	g.scene.Compose(session)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	mouse := input.ReadMouse()
	touch := g.touches.Read()

	// End-of-round modal: keyboard or the restart button
	if btn, ok := g.scene.RestartButton(); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			pressedIn(btn, mouse) || pressedIn(btn, touch) {
			g.session.Restart()
			g.scene.Compose(g.session)
			return nil
		}
	}

	g.mouse.Handle(g.session, mouse)
	g.touch.Handle(g.session, touch)

	// Tick session (countdown, effects)
	g.session.Update()

	g.scene.Compose(g.session)
	return nil
}

func pressedIn(r world.Rect, p input.Pointer) bool {
	return p.JustPressed && r.Contains(p.X, p.Y)
}

func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if w, h := g.stars.Size(); w != float64(b.Dx()) || h != float64(b.Dy()) {
		g.stars.Resize(b.Dx(), b.Dy())
	}
	g.canvas.Target = screen
	g.stars.Frame(g.canvas)
	g.scene.Draw(screen, g.session)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "YAML config file (default $"+config.EnvPrefix+"CONFIG)")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		logger.Stderr("info").Error(ctx, "load config", logger.Error(err))
		os.Exit(1)
	}
	log := logger.Stderr(cfg.LogLevel)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg, log)); err != nil {
		log.Error(ctx, "game exited", logger.Error(err))
		os.Exit(1)
	}
}
