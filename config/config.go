// Package config holds the construction-time settings of the game: gameplay rules
// and the frontend layout. Values are read once at startup and never change afterwards.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/twin-shooter/constants"
)

// Config is the root of the TOML file
type Config struct {
	// Seed for the enemy spawner; 0 seeds from the clock
	Seed int64 `toml:"seed"`

	Rules    Rules    `toml:"rules"`
	Terminal Terminal `toml:"terminal"`
	Window   Window   `toml:"window"`
}

// Rules are the gameplay constants shared by both frontends
type Rules struct {
	PlayerWidth  float64 `toml:"player_width"`
	PlayerHeight float64 `toml:"player_height"`
	PlayerSpeed  float64 `toml:"player_speed"`

	BulletWidth         float64 `toml:"bullet_width"`
	BulletHeight        float64 `toml:"bullet_height"`
	BulletSpeed         float64 `toml:"bullet_speed"`
	MaxBulletsPerPlayer int     `toml:"max_bullets_per_player"`

	EnemySize  float64 `toml:"enemy_size"`
	EnemySpeed float64 `toml:"enemy_speed"`
	MaxEnemies int     `toml:"max_enemies"`

	ScoreIncrement int `toml:"score_increment"`

	// PlayerColors are hex colors, one per player, in player order
	PlayerColors []string `toml:"player_colors"`
	EnemyColor   string   `toml:"enemy_color"`
	ScoreColor   string   `toml:"score_color"`
}

// Terminal configures the tcell frontend
type Terminal struct {
	// CellWidth and CellHeight are the field units covered by one terminal cell
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`

	// HoldTimeout releases a move key after this long without a key repeat
	HoldTimeout time.Duration `toml:"hold_timeout"`
}

// Window configures the desktop frontend
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Rules:    DefaultRules(),
		Terminal: Terminal{
			CellWidth:   constants.TerminalCellWidth,
			CellHeight:  constants.TerminalCellHeight,
			HoldTimeout: constants.TerminalHoldTimeout,
		},
		Window: Window{
			Width:  constants.WindowWidth,
			Height: constants.WindowHeight,
			Title:  constants.WindowTitle,
		},
	}
}

// DefaultRules returns the stock gameplay constants
func DefaultRules() Rules {
	return Rules{
		PlayerWidth:         constants.PlayerWidth,
		PlayerHeight:        constants.PlayerHeight,
		PlayerSpeed:         constants.PlayerSpeed,
		BulletWidth:         constants.BulletWidth,
		BulletHeight:        constants.BulletHeight,
		BulletSpeed:         constants.BulletSpeed,
		MaxBulletsPerPlayer: constants.MaxBulletsPerPlayer,
		EnemySize:           constants.EnemySize,
		EnemySpeed:          constants.EnemySpeed,
		MaxEnemies:          constants.MaxEnemies,
		ScoreIncrement:      constants.ScoreIncrement,
		PlayerColors:        []string{constants.PlayerOneColor, constants.PlayerTwoColor},
		EnemyColor:          constants.EnemyColor,
		ScoreColor:          constants.ScoreColor,
	}
}

// Load decodes a TOML file on top of the defaults and validates the result.
// Keys the file sets that Config does not know are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	errs := []error{c.Rules.Validate()}

	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, errors.New("terminal cell size must be positive"))
	}
	if c.Terminal.HoldTimeout <= 0 {
		errs = append(errs, errors.New("terminal hold_timeout must be positive"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, errors.New("window size must be positive"))
	}

	return errors.Join(errs...)
}

// Validate checks sizes, speeds, caps and colors
func (r Rules) Validate() error {
	var errs []error

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"player_width", r.PlayerWidth},
		{"player_height", r.PlayerHeight},
		{"player_speed", r.PlayerSpeed},
		{"bullet_width", r.BulletWidth},
		{"bullet_height", r.BulletHeight},
		{"bullet_speed", r.BulletSpeed},
		{"enemy_size", r.EnemySize},
		{"enemy_speed", r.EnemySpeed},
	} {
		if f.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", f.name, f.value))
		}
	}

	if r.MaxBulletsPerPlayer < 0 {
		errs = append(errs, fmt.Errorf("max_bullets_per_player must not be negative, got %d", r.MaxBulletsPerPlayer))
	}
	if r.MaxEnemies < 0 {
		errs = append(errs, fmt.Errorf("max_enemies must not be negative, got %d", r.MaxEnemies))
	}
	if r.ScoreIncrement < 0 {
		errs = append(errs, fmt.Errorf("score_increment must not be negative, got %d", r.ScoreIncrement))
	}

	if len(r.PlayerColors) != constants.PlayerCount {
		errs = append(errs, fmt.Errorf("player_colors needs %d entries, got %d", constants.PlayerCount, len(r.PlayerColors)))
	}
	for i, c := range r.PlayerColors {
		if _, err := colorful.Hex(c); err != nil {
			errs = append(errs, fmt.Errorf("player_colors[%d]: %w", i, err))
		}
	}
	if _, err := colorful.Hex(r.EnemyColor); err != nil {
		errs = append(errs, fmt.Errorf("enemy_color: %w", err))
	}
	if _, err := colorful.Hex(r.ScoreColor); err != nil {
		errs = append(errs, fmt.Errorf("score_color: %w", err))
	}

	return errors.Join(errs...)
}
