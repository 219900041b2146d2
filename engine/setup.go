package engine

import (
	"math"

	"github.com/bfix/egsbound/tables"
)

// NewTables builds the setup artifacts for a run targeting N with
// candidate t: P_max = max(ceil(sqrt(2N/5)), ceil(sqrt(t))) covers every
// prime <= sqrt(t) the run can need, and M_max covers every cofactor up to pass B's
// explicit bound of 5*ceil(t/4).
func NewTables(N, t uint64) *Tables {
	pmax := uint64(math.Ceil(math.Sqrt(2 * float64(N) / 5)))
	if r := uint64(math.Ceil(math.Sqrt(float64(t)))); r > pmax {
		pmax = r
	}
	if pmax < 2 {
		pmax = 2
	}
	pt := tables.BuildPrimeTable(pmax)
	enum := tables.NewEnumerator(N)
	mmax := 5*ceilDiv(t, 4) + 1
	st := tables.BuildSmoothTable(pt, mmax)
	return &Tables{Primes: pt, Enum: enum, Smooth: st}
}

// NewExponentVector computes E[i] = v_{p_i}(N!) for every prime index
// the table knows about, the starting residual for one engine run (also
// used by the verifier to rebuild E from scratch before a replay).
func NewExponentVector(N uint64, tb *Tables) ExponentVector {
	n := tb.Primes.NumPrimes()
	E := make(ExponentVector, n+1)
	for i := 1; i <= n; i++ {
		p := tb.Primes.Prime(i)
		var v int64
		for pk := p; pk <= N; {
			v += int64(N / pk)
			if pk > N/p {
				break
			}
			pk *= p
		}
		E[i] = v
	}
	return E
}
