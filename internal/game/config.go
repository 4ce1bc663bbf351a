package game

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/devhausleipzig/cell-dodger-game/internal/gamedata"
	"github.com/devhausleipzig/cell-dodger-game/internal/grid"
)

// Defaults for a new session.
const (
	DefaultPlayers      = 1
	DefaultEnemies      = 5
	DefaultCoins        = 2
	DefaultDelay        = 400 * time.Millisecond
	DefaultMinEnemyDist = 5
)

// Environment variables read by ConfigFromEnv.
const (
	EnvPlayers      = "CELLDODGER_PLAYERS"
	EnvEnemies      = "CELLDODGER_ENEMIES"
	EnvCoins        = "CELLDODGER_COINS"
	EnvDelayMS      = "CELLDODGER_DELAY_MS"
	EnvMinEnemyDist = "CELLDODGER_MIN_ENEMY_DIST"
	EnvGridSize     = "CELLDODGER_GRID_SIZE"
	EnvSeed         = "CELLDODGER_SEED"
)

// ErrInvalidConfiguration is returned when a config cannot produce a playable session.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds game configuration options.
type Config struct {
	Players      int           // Number of player tokens, at most one per binding set
	Enemies      int           // Number of enemy tokens
	Coins        int           // Number of coins kept on the grid at all times
	Delay        time.Duration // Time between ticks
	MinEnemyDist float64       // Minimum flat distance from a new enemy to every other entity
	GridSize     int           // Edge length of the square grid

	// Seed for random number generation. Used for reproducible placement and pursuit.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Bindings are the key sets handed to players in order. Nil means the embedded defaults.
	Bindings []gamedata.BindingDef
}

// DefaultConfig returns the configuration a fresh page load would use.
func DefaultConfig() Config {
	return Config{
		Players:      DefaultPlayers,
		Enemies:      DefaultEnemies,
		Coins:        DefaultCoins,
		Delay:        DefaultDelay,
		MinEnemyDist: DefaultMinEnemyDist,
		GridSize:     grid.DefaultSize,
	}
}

// Validate checks that the config can be placed on its grid.
// It cannot detect every min-distance layout that is impossible; placement reports those.
func (c Config) Validate() error {
	switch {
	case c.Players <= 0:
		return fmt.Errorf("player count %d must be positive: %w", c.Players, ErrInvalidConfiguration)
	case c.Enemies <= 0:
		return fmt.Errorf("enemy count %d must be positive: %w", c.Enemies, ErrInvalidConfiguration)
	case c.Coins <= 0:
		return fmt.Errorf("coin count %d must be positive: %w", c.Coins, ErrInvalidConfiguration)
	case c.Delay <= 0:
		return fmt.Errorf("delay %v must be positive: %w", c.Delay, ErrInvalidConfiguration)
	case c.GridSize <= 0:
		return fmt.Errorf("grid size %d must be positive: %w", c.GridSize, ErrInvalidConfiguration)
	case c.MinEnemyDist < 0:
		return fmt.Errorf("minimum enemy distance %v must not be negative: %w", c.MinEnemyDist, ErrInvalidConfiguration)
	}

	if c.Players > len(c.Bindings) {
		return fmt.Errorf("%d players but only %d key binding sets: %w",
			c.Players, len(c.Bindings), ErrInvalidConfiguration)
	}

	cells := c.GridSize * c.GridSize
	if total := c.Players + c.Enemies + c.Coins; total > cells {
		return fmt.Errorf("%d entities do not fit in %d cells: %w", total, cells, ErrInvalidConfiguration)
	}
	return nil
}

// withDefaultBindings fills in the embedded binding sets when none were given.
func (c Config) withDefaultBindings() (Config, error) {
	if c.Bindings != nil {
		return c, nil
	}
	bindings, err := gamedata.LoadBindings()
	if err != nil {
		return c, err
	}
	c.Bindings = bindings
	return c, nil
}

// ConfigFromEnv starts from DefaultConfig and overrides every field whose variable is set.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvPlayers, &cfg.Players},
		{EnvEnemies, &cfg.Enemies},
		{EnvCoins, &cfg.Coins},
		{EnvGridSize, &cfg.GridSize},
	}
	for _, v := range ints {
		raw := getenv(v.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", v.name, raw, ErrInvalidConfiguration)
		}
		*v.dst = n
	}

	if raw := getenv(EnvDelayMS); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvDelayMS, raw, ErrInvalidConfiguration)
		}
		cfg.Delay = time.Duration(ms) * time.Millisecond
	}

	if raw := getenv(EnvMinEnemyDist); raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvMinEnemyDist, raw, ErrInvalidConfiguration)
		}
		cfg.MinEnemyDist = d
	}

	if raw := getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvSeed, raw, ErrInvalidConfiguration)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}
