package verify

import (
	"testing"

	"github.com/bfix/egsbound/config"
	"github.com/bfix/egsbound/engine"
	"github.com/bfix/egsbound/tables"
)

func TestReplayMatchesEngineCount(t *testing.T) {
	N := uint64(3000)
	tt := uint64(1100)
	tuning := config.Default()
	tb := engine.NewTables(N, tt)
	r, err := engine.Run(N, tt, tuning, tb, false, true)
	if err != nil {
		t.Fatal(err)
	}
	rep := Replay(N, tt, r.Log, tb)
	if !rep.Valid {
		t.Fatalf("replay invalid: %v", rep.Failure)
	}
	if rep.Count != r.Count {
		t.Errorf("replay count %d != engine count %d", rep.Count, r.Count)
	}
}

func TestReplayBothVariants(t *testing.T) {
	N := uint64(3000)
	tt := uint64(1100)
	for _, v := range []config.Variant{config.Standard, config.Fast} {
		tuning := config.Tuning{Cutoff: config.CutoffDefault, Variant: v}
		tb := engine.NewTables(N, tt)
		r, err := engine.Run(N, tt, tuning, tb, false, true)
		if err != nil {
			t.Fatalf("variant %d: %v", v, err)
		}
		rep := Replay(N, tt, r.Log, tb)
		if !rep.Valid {
			t.Fatalf("variant %d: replay invalid: %v", v, rep.Failure)
		}
		if rep.Count != r.Count {
			t.Errorf("variant %d: replay count %d != engine count %d", v, rep.Count, r.Count)
		}
	}
}

func TestReplayDetectsTruncatedLog(t *testing.T) {
	N := uint64(3000)
	tt := uint64(1100)
	tuning := config.Default()
	tb := engine.NewTables(N, tt)
	r, err := engine.Run(N, tt, tuning, tb, false, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Log) < 2 {
		t.Skip("not enough descriptors to truncate meaningfully")
	}
	truncated := r.Log[:len(r.Log)-1]
	rep := Replay(N, tt, truncated, tb)
	if rep.Count == r.Count {
		t.Error("truncated replay should report a smaller count")
	}
}

func TestFactorizationOfMatchesSmoothTable(t *testing.T) {
	N := uint64(200)
	tt := uint64(70)
	tb := engine.NewTables(N, tt)
	for _, m := range []uint64{1, 2, 4, 12, 30} {
		if tb.Smooth.M[m] == 0 {
			continue
		}
		off := tb.Smooth.M[m]
		var record []tables.PP
		for tb.Smooth.F[off].PI != 0 {
			record = append(record, tb.Smooth.F[off])
			off++
		}
		if got := FactorizationOf(tb.Primes, record); got != m {
			t.Errorf("FactorizationOf(%d) = %d, want %d", m, got, m)
		}
	}
}
