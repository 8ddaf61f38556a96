// Package window runs the game in a desktop window using ebiten.
package window

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/twin-shooter/config"
	"github.com/lixenwraith/twin-shooter/constants"
	"github.com/lixenwraith/twin-shooter/engine"
)

// Game adapts the controller to ebiten's Update/Draw/Layout cycle
type Game struct {
	game     *engine.Game
	keys     *KeyAdapter
	renderer *Renderer
	logger   *slog.Logger
}

// NewGame wires the controller, keyboard and renderer
func NewGame(game *engine.Game, renderer *Renderer, logger *slog.Logger) *Game {
	return &Game{
		game:     game,
		keys:     NewKeyAdapter(game),
		renderer: renderer,
		logger:   logger,
	}
}

// Update advances the simulation one tick
func (g *Game) Update() error {
	quit, err := g.keys.Poll()
	if err != nil {
		g.logger.Warn("input rejected", "err", err)
	}
	if quit {
		return ebiten.Termination
	}

	g.game.Tick()
	g.renderer.Banner.HandleEvents(g.game.ConsumeEvents())
	return nil
}

// Draw renders the latest frame
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Frame())
}

// Layout maps the window one pixel per field unit and resizes the field to match
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	field := g.game.State().Field
	w, h := float64(outsideWidth), float64(outsideHeight)
	if field.Width != w || field.Height != h {
		if err := g.game.SetField(w, h); err != nil {
			g.logger.Debug("window resize ignored", "width", w, "height", h, "err", err)
			return int(field.Width), int(field.Height)
		}
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed
func Run(game *engine.Game, renderer *Renderer, cfg config.Window, logger *slog.Logger) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(time.Second / constants.FrameUpdateInterval))

	err := ebiten.RunGame(NewGame(game, renderer, logger))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
