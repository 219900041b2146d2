package tables

// PiExact computes pi(n), the exact number of primes <= n, for any
// n up to 2^48. It is the combinatorial Lucy_Hedgehog / Meissel-style
// extension of the sieve of Eratosthenes: it tracks, for every value v
// of the form floor(n/i), phi-like partial counts and removes each
// prime's multiples from them in turn. Runs in O(n^(3/4)) time and
// O(sqrt(n)) space per call and is independent of the P_max-bounded
// PrimeTable, since the large-prime tail regimes query x values far
// beyond P_max.
func PiExact(n uint64) uint64 {
	if n < 2 {
		return 0
	}
	r := isqrt(n)

	// smaller[i] = (running count of numbers <= i not yet sieved out) - 1,
	// converging to pi(i), for 1 <= i <= r.
	smaller := make([]uint64, r+1)
	// larger[i] = same running count for floor(n/i), for 1 <= i <= r.
	larger := make([]uint64, r+1)

	for i := uint64(1); i <= r; i++ {
		smaller[i] = i - 1
		larger[i] = n/i - 1
	}

	for p := uint64(2); p <= r; p++ {
		if smaller[p] == smaller[p-1] {
			continue // p is composite: its count didn't increase
		}
		sp := smaller[p-1] // pi(p-1)
		p2 := p * p

		lim := r
		if n/p2 < lim {
			lim = n / p2
		}
		for i := uint64(1); i <= lim; i++ {
			d := i * p
			var val uint64
			if d <= r {
				val = larger[d]
			} else {
				val = smaller[n/d]
			}
			larger[i] -= val - sp
		}
		for i := r; i >= p2; i-- {
			smaller[i] -= smaller[i/p] - sp
		}
	}
	return larger[1]
}
