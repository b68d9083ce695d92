package config

import (
	"os"
	"snake-arcade/game/types"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the startup settings. Keys missing from a YAML file keep the
// defaults.
type Config struct {
	Title      string `yaml:"title"`
	GridWidth  int    `yaml:"grid_width"`
	GridHeight int    `yaml:"grid_height"`
	CellSize   int    `yaml:"cell_size"`
	TickMs     int    `yaml:"tick_ms"`
	FPS        int    `yaml:"fps"`
	AssetDir   string `yaml:"asset_dir"`
	Seed       uint64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		Title:      "Snake",
		GridWidth:  20,
		GridHeight: 20,
		CellSize:   40,
		TickMs:     int(types.TickInterval / time.Millisecond),
		FPS:        60,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid %s", path)
	}
	return cfg, nil
}

// Validate checks that the grid can hold the starting snake and that all
// timings are positive.
func (c Config) Validate() error {
	start := types.StartBody()
	grid := c.Grid()
	for _, p := range start {
		if !grid.Contains(p) {
			return errors.Errorf("grid %dx%d cannot hold the starting snake at %v", c.GridWidth, c.GridHeight, p)
		}
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell_size must be positive, got %d", c.CellSize)
	}
	if c.TickMs <= 0 {
		return errors.Errorf("tick_ms must be positive, got %d", c.TickMs)
	}
	if c.FPS <= 0 {
		return errors.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.GridWidth, Height: c.GridHeight}
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// ScreenSize is the window size in pixels.
func (c Config) ScreenSize() (int32, int32) {
	return int32(c.GridWidth * c.CellSize), int32(c.GridHeight * c.CellSize)
}
