package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/twin-shooter/config"
	"github.com/lixenwraith/twin-shooter/engine"
	"github.com/lixenwraith/twin-shooter/render"
	"github.com/lixenwraith/twin-shooter/systems"
	"github.com/lixenwraith/twin-shooter/window"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	uiFlag     = flag.String("ui", "terminal", "Frontend: terminal, window")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 uses the config seed or the clock")
)

func main() {
	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(logger); err != nil {
		logger.Error("exit", "err", err)
		fmt.Fprintf(os.Stderr, "twin-shooter: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	seed := cfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "ui", *uiFlag, "seed", seed)

	palette, err := render.NewPalette(cfg.Rules)
	if err != nil {
		return err
	}

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithRand(rand.New(rand.NewSource(seed))),
	}

	switch *uiFlag {
	case "terminal":
		return runTerminalUI(cfg, palette, logger, opts)
	case "window":
		game, err := newGame(cfg, float64(cfg.Window.Width), float64(cfg.Window.Height), opts)
		if err != nil {
			return err
		}
		return window.Run(game, window.NewRenderer(palette), cfg.Window, logger)
	default:
		return fmt.Errorf("unknown -ui %q (want terminal or window)", *uiFlag)
	}
}

func newGame(cfg *config.Config, width, height float64, opts []engine.Option) (*engine.Game, error) {
	game, err := engine.NewGame(cfg.Rules, width, height, opts...)
	if err != nil {
		return nil, err
	}
	systems.RegisterDefaults(game)
	return game, nil
}

func runTerminalUI(cfg *config.Config, palette *render.Palette, logger *slog.Logger, opts []engine.Option) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("terminal frontend needs a tty, try -ui window")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	defer screen.Fini()
	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTWIN-SHOOTER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	renderer := render.NewTerminalRenderer(screen, palette, cfg.Terminal)
	width, height := renderer.FieldSize()
	game, err := newGame(cfg, width, height, opts)
	if err != nil {
		return fmt.Errorf("terminal %dx%d: %w", int(width), int(height), err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runTerminal(ctx, screen, game, renderer, cfg.Terminal, logger)
}
