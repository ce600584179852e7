package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"roomforge/pkg/game/renderer"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[grid]
width = 7

[decor]
floors = ["FLOOR_A", "FLOOR_B"]
item_slots = [[1.0, 2.0], [-1.0, 0.5]]

[puzzle]
parts_required = 2

[logging]
format = "json"

[random]
seed = 42
reseed_each_load = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Grid.Width != 7 || cfg.Grid.Height != 5 {
		t.Errorf("grid = %dx%d, want 7x5", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v, want info/json", cfg.Logging)
	}
	if cfg.Levels.Book != "assets/levels.yaml" {
		t.Errorf("levels.book = %q, want the default", cfg.Levels.Book)
	}

	opts := cfg.LoaderOptions(cfg.Seed(time.Now()))
	if opts.Width != 7 || opts.Height != 5 || opts.PartsRequired != 2 {
		t.Errorf("options = %+v", opts)
	}
	if opts.Seed != 42 || !opts.ReseedEachLoad {
		t.Errorf("seed options = %d/%v, want 42/true", opts.Seed, opts.ReseedEachLoad)
	}
	if len(opts.Floors) != 2 || opts.Floors[1] != "FLOOR_B" {
		t.Errorf("floors = %v", opts.Floors)
	}
	wantSlots := []renderer.Vec2{{X: 1, Y: 2}, {X: -1, Y: 0.5}}
	if len(opts.ItemSlots) != 2 || opts.ItemSlots[0] != wantSlots[0] || opts.ItemSlots[1] != wantSlots[1] {
		t.Errorf("item slots = %v, want %v", opts.ItemSlots, wantSlots)
	}
	if opts.BlockerOffset != (renderer.Vec2{X: 0, Y: -2.3}) {
		t.Errorf("blocker offset = %v, want default", opts.BlockerOffset)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}

	bad := writeConfig(t, "[grid\nwidth = 5")
	if _, err := Load(bad); err == nil {
		t.Error("Load(malformed) error = nil")
	}

	zero := writeConfig(t, "[grid]\nwidth = 0\n")
	if _, err := Load(zero); err == nil {
		t.Error("Load(zero width) error = nil")
	}
}

func TestSeed(t *testing.T) {
	cfg := Default()
	now := time.Unix(0, 12345)
	if got := cfg.Seed(now); got != 12345 {
		t.Errorf("Seed() without config = %d, want clock value", got)
	}
	cfg.Random.Seed = 9
	if got := cfg.Seed(now); got != 9 {
		t.Errorf("Seed() = %d, want 9", got)
	}
}
