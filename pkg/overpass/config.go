package overpass

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Params holds the selection tunables.
type Params struct {
	// MaxDiffHours is the largest time difference, in hours, between an
	// overpass date and the target date for which a group still competes.
	MaxDiffHours float64 `env:"MAX_DIFF_HOURS" envDefault:"48"`

	// MinOverlapPct is the minimum summed AOI overlap fraction a group
	// needs to compete.
	MinOverlapPct float64 `env:"MIN_OVERLAP_PCT" envDefault:"0.3"`
}

// DefaultParams returns the standard tunables: a 48 hour cutoff and a 0.3
// overlap floor.
func DefaultParams() Params {
	return Params{
		MaxDiffHours:  48,
		MinOverlapPct: 0.3,
	}
}

// ParamsFromEnv parses Params from OVERPASS_-prefixed environment
// variables, falling back to the defaults for unset variables.
func ParamsFromEnv() (Params, error) {
	var p Params

	opts := env.Options{
		Prefix: "OVERPASS_",
	}

	if err := env.ParseWithOptions(&p, opts); err != nil {
		return Params{}, fmt.Errorf("failed to parse overpass params: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("invalid overpass params: %w", err)
	}

	return p, nil
}

// Validate checks that the tunables are usable.
func (p Params) Validate() error {
	if p.MaxDiffHours <= 0 {
		return fmt.Errorf("max diff hours must be positive, got %v", p.MaxDiffHours)
	}

	if p.MinOverlapPct < 0 || p.MinOverlapPct > 1 {
		return fmt.Errorf("min overlap pct must be between 0 and 1, got %v", p.MinOverlapPct)
	}

	return nil
}
