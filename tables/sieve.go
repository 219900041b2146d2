// Package tables builds the immutable, shared, read-only tables the
// greedy engine consumes: the prime table P[]/PI[] up to P_max, a
// segmented-sieve prime enumerator for ranges beyond P_max, an exact
// prime-counting function for arbitrarily large x, and the
// P_max-smooth factorization arena (F, M[]).
//
// Everything in this package is built once during setup and never
// mutated afterwards, so it is safe to share a single *PrimeTable /
// *SmoothTable across every engine invocation and every exhaustive-
// search worker without locking.
package tables

import "math"

// PrimeTable holds the n-th prime p_n for n <= pi(P_max), and pi(x) for
// x <= P_max.
type PrimeTable struct {
	Pmax uint64
	// P[0] = 1 (sentinel), P[n] = n-th prime for 1 <= n <= NumPrimes().
	P []uint64
	// PI[x] = pi(x) for 0 <= x <= Pmax.
	PI []uint32
}

// BuildPrimeTable sieves all primes up to pmax and derives pi(x) for
// every x <= pmax.
func BuildPrimeTable(pmax uint64) *PrimeTable {
	if pmax < 2 {
		pmax = 2
	}
	isComposite := make([]bool, pmax+1)
	for i := uint64(2); i*i <= pmax; i++ {
		if !isComposite[i] {
			for j := i * i; j <= pmax; j += i {
				isComposite[j] = true
			}
		}
	}
	t := &PrimeTable{
		Pmax: pmax,
		P:    []uint64{1},
		PI:   make([]uint32, pmax+1),
	}
	count := uint32(0)
	for x := uint64(2); x <= pmax; x++ {
		if !isComposite[x] {
			count++
			t.P = append(t.P, x)
		}
		t.PI[x] = count
	}
	return t
}

// NumPrimes returns pi(P_max), the number of primes indexed by this table.
func (t *PrimeTable) NumPrimes() int {
	return len(t.P) - 1
}

// Prime returns the i-th prime; Prime(0) is the sentinel value 1.
func (t *PrimeTable) Prime(i int) uint64 {
	return t.P[i]
}

// Pi returns pi(x) for x <= P_max; panics outside that range, since
// callers must route larger queries through PiExact instead.
func (t *PrimeTable) Pi(x uint64) uint64 {
	if x > t.Pmax {
		panic("tables: Pi(x) called with x beyond P_max; use PiExact")
	}
	return uint64(t.PI[x])
}

// IsPrime reports primality for x <= P_max.
func (t *PrimeTable) IsPrime(x uint64) bool {
	if x < 2 || x > t.Pmax {
		return false
	}
	return t.Pi(x) != t.Pi(x-1)
}

// isqrt returns floor(sqrt(n)), exact for all uint64 n: the floating
// point estimate is corrected by integer arithmetic.
func isqrt(n uint64) uint64 {
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
