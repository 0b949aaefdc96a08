package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Weights are the evaluator coefficients. Scores are in pawn units.
type Weights struct {
	Material   float64 `json:"material"`
	Tactical   float64 `json:"tactical"`
	Positional float64 `json:"positional"`

	HangingOwn   float64 `json:"hanging_own"`   // per point of an own hanging piece
	HangingMajor float64 `json:"hanging_major"` // extra for own hanging pieces worth 5 or more
	QueenHanging float64 `json:"queen_hanging"`
	HangingEnemy float64 `json:"hanging_enemy"` // per point of an opponent hanging piece

	Center   float64 `json:"center"`
	Mobility float64 `json:"mobility"`
}

type CacheConfig struct {
	MaxEntries      int     `json:"max_entries"`
	SweepIntervalMs int     `json:"sweep_interval_ms"`
	SweepThreshold  int     `json:"sweep_threshold"`
	SweepRetain     float64 `json:"sweep_retain"`
	EmergencyLimit  int     `json:"emergency_limit"`
}

func (c CacheConfig) sweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalMs) * time.Millisecond
}

type Config struct {
	Depth         int         `json:"depth"`
	MaxCandidates int         `json:"max_candidates"`
	Weights       Weights     `json:"weights"`
	Cache         CacheConfig `json:"cache"`
}

func DefaultConfig() Config {
	return Config{
		Depth:         3,
		MaxCandidates: 12,
		Weights: Weights{
			Material:   0.80,
			Tactical:   0.15,
			Positional: 0.05,

			HangingOwn:   2,
			HangingMajor: 3,
			QueenHanging: 15,
			HangingEnemy: 1,

			Center:   0.5,
			Mobility: 0.1,
		},
		Cache: CacheConfig{
			MaxEntries:      10000,
			SweepIntervalMs: 60000,
			SweepThreshold:  5000,
			SweepRetain:     0.6,
			EmergencyLimit:  15000,
		},
	}
}

// LoadConfig reads a JSON file over the defaults, so a file only needs the
// fields it changes.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Depth < 1:
		return fmt.Errorf("config: depth must be at least 1, got %d", c.Depth)
	case c.MaxCandidates < 1:
		return fmt.Errorf("config: max_candidates must be at least 1, got %d", c.MaxCandidates)
	case c.Cache.MaxEntries < 1:
		return fmt.Errorf("config: cache.max_entries must be positive")
	case c.Cache.SweepRetain <= 0 || c.Cache.SweepRetain > 1:
		return fmt.Errorf("config: cache.sweep_retain must be in (0, 1], got %g", c.Cache.SweepRetain)
	case c.Cache.SweepIntervalMs < 0:
		return fmt.Errorf("config: cache.sweep_interval_ms must not be negative")
	}
	return nil
}
