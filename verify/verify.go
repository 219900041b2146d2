// Package verify independently replays a factorization log against a
// freshly rebuilt exponent vector, checking every invariant the engine
// itself relies on but does not re-check on its own hot path.
package verify

import (
	"math"

	"github.com/bfix/egsbound/engine"
	"github.com/bfix/egsbound/internal/gerr"
	"github.com/bfix/egsbound/tables"
)

// Report is the outcome of a replay.
type Report struct {
	Count   uint64
	Valid   bool
	Failure error
}

// Replay rebuilds E for N from scratch and applies every descriptor in
// log in order, checking E[i] >= 0 after each one and accumulating the
// total factor count. Large-prime descriptors get two extra checks:
// n's formula, and m*(p+1) >= t.
func Replay(N, t uint64, log []engine.FactorDescriptor, tb *engine.Tables) Report {
	E := engine.NewExponentVector(N, tb)
	var count uint64

	for idx, d := range log {
		if d.Kind == engine.LargePrime {
			if err := checkLargePrimeDescriptor(N, t, d, tb); err != nil {
				return Report{Count: count, Valid: false, Failure: err}
			}
		}
		c := d.NP
		for _, pp := range d.F {
			E[pp.PI] -= int64(d.N) * int64(c) * int64(pp.E)
		}
		if !E.Valid() {
			return Report{Count: count, Valid: false, Failure: gerr.New(gerr.ErrInvariantBreach,
				"descriptor %d drives E negative (N=%d M=%d P=%d Q=%d)", idx, d.N, d.M, d.P, d.Q)}
		}
		count += d.Count()
	}
	return Report{Count: count, Valid: true}
}

// checkLargePrimeDescriptor re-derives n at the descriptor's leading
// prime p = d.P+1 and asserts it matches d.N, and that m*p >= t.
// The checks are phrased in terms of P+1 because the descriptor's
// interval is open at P.
func checkLargePrimeDescriptor(N, t uint64, d engine.FactorDescriptor, tb *engine.Tables) error {
	p := d.P + 1
	sqrtN := isqrtU(N)

	var want uint64
	if d.Q <= sqrtN {
		want = N/p + N/(p*p)
	} else {
		want = N / p
	}
	if want != d.N {
		return gerr.New(gerr.ErrInvariantBreach, "large-prime descriptor n mismatch: got %d want %d (p=%d)", d.N, want, p)
	}
	if d.M*p < t {
		return gerr.New(gerr.ErrInvariantBreach, "large-prime descriptor fails m*p>=t (m=%d p=%d t=%d)", d.M, p, t)
	}
	return nil
}

// FactorizationOf replays the stored record for m and reports the
// product it multiplies back to, used by setup tests to confirm the
// smooth table's invariant independently of BuildSmoothTable itself.
func FactorizationOf(pt *tables.PrimeTable, f []tables.PP) uint64 {
	v := uint64(1)
	for _, pp := range f {
		p := pt.Prime(int(pp.PI))
		for e := uint8(0); e < pp.E; e++ {
			v *= p
		}
	}
	return v
}

func isqrtU(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
