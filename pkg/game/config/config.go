// Package config loads the TOML configuration of the level runner.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"roomforge/pkg/game/renderer"
	"roomforge/pkg/game/setup"
)

type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Decor   DecorConfig   `toml:"decor"`
	Puzzle  PuzzleConfig  `toml:"puzzle"`
	Levels  LevelsConfig  `toml:"levels"`
	Logging LoggingConfig `toml:"logging"`
	Random  RandomConfig  `toml:"random"`
}

type GridConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type DecorConfig struct {
	Floors        []string     `toml:"floors"`
	ItemSlots     [][2]float64 `toml:"item_slots"`     // x, y pairs inside a room
	BlockerOffset [2]float64   `toml:"blocker_offset"` // x, y below the room centre
}

type PuzzleConfig struct {
	PartsRequired int `toml:"parts_required"`
}

type LevelsConfig struct {
	Book      string `toml:"book"`       // YAML or JSON level book
	LocaleDir string `toml:"locale_dir"` // gettext catalogues, empty disables translation
	Language  string `toml:"language"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // "json" or "console"
}

type RandomConfig struct {
	Seed           int64 `toml:"seed"` // 0 picks a seed from the clock
	ReseedEachLoad bool  `toml:"reseed_each_load"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration used when no file is given
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Grid: GridConfig{
			Width:  5,
			Height: 5,
		},
		Decor: DecorConfig{
			BlockerOffset: [2]float64{0, -2.3},
		},
		Puzzle: PuzzleConfig{
			PartsRequired: 3,
		},
		Levels: LevelsConfig{
			Book:     "assets/levels.yaml",
			Language: "en_US",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Grid.Width, c.Grid.Height)
	}
	if c.Puzzle.PartsRequired < 0 {
		return fmt.Errorf("parts_required %d must not be negative", c.Puzzle.PartsRequired)
	}
	return nil
}

// Seed returns the configured seed, or one taken from now if none is set
func (c *Config) Seed(now time.Time) int64 {
	if c.Random.Seed != 0 {
		return c.Random.Seed
	}
	return now.UnixNano()
}

// LoaderOptions converts the configuration into level loader options
func (c *Config) LoaderOptions(seed int64) setup.Options {
	opts := setup.Options{
		Width:          c.Grid.Width,
		Height:         c.Grid.Height,
		PartsRequired:  c.Puzzle.PartsRequired,
		Floors:         append([]string(nil), c.Decor.Floors...),
		BlockerOffset:  renderer.Vec2{X: c.Decor.BlockerOffset[0], Y: c.Decor.BlockerOffset[1]},
		Seed:           seed,
		ReseedEachLoad: c.Random.ReseedEachLoad,
	}
	for _, s := range c.Decor.ItemSlots {
		opts.ItemSlots = append(opts.ItemSlots, renderer.Vec2{X: s[0], Y: s[1]})
	}
	return opts
}
