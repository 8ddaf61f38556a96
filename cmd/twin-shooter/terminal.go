package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/twin-shooter/config"
	"github.com/lixenwraith/twin-shooter/constants"
	"github.com/lixenwraith/twin-shooter/engine"
	"github.com/lixenwraith/twin-shooter/input"
	"github.com/lixenwraith/twin-shooter/render"
)

// runTerminal drives the game on a tcell screen until quit or ctx is done
func runTerminal(ctx context.Context, screen tcell.Screen, game *engine.Game, renderer *render.TerminalRenderer, cfg config.Terminal, logger *slog.Logger) error {
	adapter := input.NewTerminalAdapter(game, input.DefaultKeyTable(), cfg.HoldTimeout)

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with the screen
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	renderer.RenderFrame(game.Frame())

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				quit, err := adapter.HandleKey(ev)
				if err != nil {
					logger.Warn("input rejected", "err", err)
				}
				if quit {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				width, height := renderer.FieldSize()
				if err := game.SetField(width, height); err != nil {
					logger.Warn("resize ignored", "width", width, "height", height, "err", err)
				}
			}

		case <-frameTicker.C:
			if err := adapter.Update(); err != nil {
				logger.Warn("input rejected", "err", err)
			}
			game.Tick()
			renderer.Banner.HandleEvents(game.ConsumeEvents())
			renderer.RenderFrame(game.Frame())
		}
	}
}
