package tables

// Enumerator lists primes in an arbitrary range via a segmented sieve
// seeded by a base prime table up to sqrt(hi). It backs the engine's
// large-prime regimes R1/R2, which walk primes well beyond the
// statically-sized P_max table.
type Enumerator struct {
	base *PrimeTable
}

// NewEnumerator builds an enumerator able to list primes up to maxHi.
func NewEnumerator(maxHi uint64) *Enumerator {
	return &Enumerator{base: BuildPrimeTable(isqrt(maxHi) + 1)}
}

// Primes returns every prime in [lo, hi], in increasing order.
func (e *Enumerator) Primes(lo, hi uint64) []uint64 {
	if lo < 2 {
		lo = 2
	}
	if hi < lo {
		return nil
	}
	size := hi - lo + 1
	composite := make([]bool, size)
	for i := 1; i <= e.base.NumPrimes(); i++ {
		p := e.base.Prime(i)
		if p*p > hi {
			break
		}
		start := ((lo + p - 1) / p) * p
		if start < p*p {
			start = p * p
		}
		for m := start; m <= hi; m += p {
			composite[m-lo] = true
		}
	}
	out := make([]uint64, 0, size/10+1)
	for v := lo; v <= hi; v++ {
		if !composite[v-lo] {
			out = append(out, v)
		}
	}
	return out
}

// Count returns the number of primes in [lo, hi], as the length of the
// list Primes(lo, hi) builds.
func (e *Enumerator) Count(lo, hi uint64) uint64 {
	return uint64(len(e.Primes(lo, hi)))
}
