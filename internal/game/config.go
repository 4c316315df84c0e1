package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/hexband/internal/hex"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvStepDuration = "HEXBAND_STEP_DURATION"
	EnvCellSize     = "HEXBAND_CELL_SIZE"
	EnvGridRadius   = "HEXBAND_GRID_RADIUS"
	EnvSeed         = "HEXBAND_SEED"
)

// Config holds session configuration options.
type Config struct {
	// StepDuration is how long a moving unit takes to cross one cell.
	StepDuration time.Duration
	// CellSize is the centre-to-corner distance of a cell in plane units.
	CellSize float64
	// GridRadius bounds the map generated for a scenario. Zero keeps the
	// scenario's own radius.
	GridRadius int
	// Seed for terrain generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		StepDuration: 100 * time.Millisecond,
		CellSize:     hex.DefaultCellSize,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by any HEXBAND_* variables
// that are set. Durations accept Go duration syntax ("150ms") or plain seconds.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvStepDuration); v != "" {
		d, err := ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvStepDuration, err)
		}
		cfg.StepDuration = d
	}
	if v := os.Getenv(EnvCellSize); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvCellSize, err)
		}
		cfg.CellSize = size
	}
	if v := os.Getenv(EnvGridRadius); v != "" {
		radius, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvGridRadius, err)
		}
		cfg.GridRadius = radius
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

// ParseDuration accepts either Go duration syntax or a number of seconds.
func ParseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.StepDuration <= 0 {
		c.StepDuration = d.StepDuration
	}
	if c.CellSize <= 0 {
		c.CellSize = d.CellSize
	}
	return c
}
