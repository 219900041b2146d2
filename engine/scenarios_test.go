package engine

import (
	"testing"

	"github.com/bfix/egsbound/config"
)

// These reproduce the four historical (N, t) pairs the original bound
// program ships as known-good/known-bad reference points: the smallest
// N past which t(N) >= N/3 holds, the next such N, the N just below it
// where the ratio fails, and a standard-greedy count with a documented
// surplus over N.

func TestScenarioN41006FastProvesBound(t *testing.T) {
	N, tt := uint64(41006), uint64(13669)
	tuning := config.Tuning{Cutoff: config.CutoffDefault, Variant: config.Fast}
	tb := NewTables(N, tt)
	r, err := Run(N, tt, tuning, tb, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if r.Count < N {
		t.Errorf("N=%d t=%d: count=%d, want >= %d", N, tt, r.Count, N)
	}
}

func TestScenarioN43632FastProvesBound(t *testing.T) {
	N, tt := uint64(43632), uint64(14545)
	tuning := config.Tuning{Cutoff: config.CutoffDefault, Variant: config.Fast}
	tb := NewTables(N, tt)
	r, err := Run(N, tt, tuning, tb, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if r.Count < N {
		t.Errorf("N=%d t=%d: count=%d, want >= %d", N, tt, r.Count, N)
	}
}

// TestScenarioN43631FastFailsToProve is the known obstruction: at one
// N below 43632, the fast greedy falls short.
func TestScenarioN43631FastFailsToProve(t *testing.T) {
	N, tt := uint64(43631), uint64(14544)
	tuning := config.Tuning{Cutoff: config.CutoffDefault, Variant: config.Fast}
	tb := NewTables(N, tt)
	r, err := Run(N, tt, tuning, tb, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if r.Count >= N {
		t.Errorf("N=%d t=%d: count=%d, want < %d (expected failure)", N, tt, r.Count, N)
	}
}

func TestScenarioN300000StandardSurplus372(t *testing.T) {
	N, tt := uint64(300000), uint64(100000)
	tuning := config.Tuning{Cutoff: config.CutoffDefault, Variant: config.Standard}
	tb := NewTables(N, tt)
	r, err := Run(N, tt, tuning, tb, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Surplus(); got != 372 {
		t.Errorf("N=%d t=%d: count-N=%d, want 372", N, tt, got)
	}
}
