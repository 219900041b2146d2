// Package config holds the performance-only knobs for the bound engine:
// the large-prime regime cutoff μ, the engine variant, and the exhaustive
// search's worker pool size. The cutoff and the worker count do not
// affect the reported count, only how fast it is reached; the variant
// selects a different small-prime algorithm and so can change the count.
package config

import "github.com/bfix/egsbound/internal/gerr"

// Variant selects which small-prime phase algorithm the engine runs.
type Variant int

const (
	// Standard is the baseline small-prime greedy.
	Standard Variant = iota
	// Fast is the two-pass small-prime greedy with p² reuse.
	Fast
)

const (
	// CutoffMin is the smallest accepted μ exponent.
	CutoffMin = 0.2
	// CutoffMax is the largest accepted μ exponent.
	CutoffMax = 0.3
	// CutoffDefault balances enumeration vs counting cost.
	CutoffDefault = 0.225
)

// Tuning bundles the engine's performance knobs.
type Tuning struct {
	// Cutoff is the μ exponent used to pick the large-prime regime
	// boundary p_mid = min(floor(t^Cutoff), (t-1)/floor(sqrt(N))).
	Cutoff float64
	// Variant selects the small-prime phase algorithm.
	Variant Variant
	// Workers is the fixed-size worker pool for the exhaustive search;
	// <= 0 lets the driver pick one worker per value found by
	// runtime.GOMAXPROCS(0).
	Workers int
}

// Default returns the recommended tuning.
func Default() Tuning {
	return Tuning{
		Cutoff:  CutoffDefault,
		Variant: Fast,
		Workers: 0,
	}
}

// Validate rejects a cutoff outside [CutoffMin, CutoffMax] and a negative
// worker count.
func (t Tuning) Validate() error {
	if t.Cutoff < CutoffMin || t.Cutoff > CutoffMax {
		return gerr.New(gerr.ErrDomainViolation, "cutoff %.4f outside [%.2f, %.2f]", t.Cutoff, CutoffMin, CutoffMax)
	}
	if t.Workers < 0 {
		return gerr.New(gerr.ErrDomainViolation, "negative worker count %d", t.Workers)
	}
	return nil
}
