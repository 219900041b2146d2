package engine

import "github.com/bfix/egsbound/tables"

// squarePrefix builds [{PI:i, E:1}] ++ f, which lets fcnti/applyMerged's
// existing merge rule account for one extra copy of p_i on top of f's
// own requirements: passing this list through fcnti(E, i, ...) yields a
// divisor of 2 for index i exactly as if p_i^2 were a first-class factor
// of the record.
func squarePrefix(i uint32, f []tables.PP) []tables.PP {
	out := make([]tables.PP, 0, len(f)+1)
	out = append(out, tables.PP{PI: i, E: 1})
	out = append(out, f...)
	return out
}

// fastPassA walks p_i down from P_max to ceil(t/M_max), trying at each
// index: the smallest valid cofactor m; if that leaves E[i] short, a
// fresh cofactor paired with p_i^2 to consume pairs; then a retry of
// the original m against whatever E[i] the p_i^2 step left behind;
// then a scan of larger plain cofactors; then a scan of larger p_i^2
// cofactors. It returns the count contributed and the prime index
// where its range ends, the starting point for pass B.
func fastPassA(t uint64, E ExponentVector, tb *Tables, rec *[]FactorDescriptor) (uint64, int) {
	st := tb.Smooth
	Ms := st.Ms
	lowBound := ceilDiv(t, st.Mmax)
	j := 0
	var total uint64

	i := tb.Primes.NumPrimes()
	for ; i >= 1; i-- {
		p := tb.Primes.Prime(i)
		if p <= lowBound {
			break
		}
		if E[i] == 0 {
			continue
		}

		for j < len(Ms) && (Ms[j]*p < t || largestPrimeIndex(st, Ms[j]) >= uint32(i)) {
			j++
		}
		if j >= len(Ms) {
			continue
		}
		f := factorRecord(st, Ms[j])

		if e := fcnti(E, uint32(i), f); e > 0 {
			applyMerged(E, e, uint32(i), f)
			total += e
			appendDesc(rec, FactorDescriptor{N: e, M: Ms[j], F: f, P: p - 1, Q: p, NP: 1, Kind: SmallPrime})
		}

		if E[i] == 0 {
			continue
		}

		// p_i^2 extension: consume pairs of p_i against a fresh cofactor.
		if sq := p * p; sq/p == p { // overflow guard, p^2 always fits here since p <= P_max
			mPrime := ceilDiv(t, sq)
			if mPrime <= st.Mmax && st.M[mPrime] != 0 && largestPrimeIndex(st, mPrime) < uint32(i) {
				f2 := squarePrefix(uint32(i), factorRecord(st, mPrime))
				if e2 := fcnti(E, uint32(i), f2); e2 > 0 {
					applyMerged(E, e2, uint32(i), f2)
					total += e2
					appendDesc(rec, FactorDescriptor{N: e2, M: mPrime, F: f2, P: p - 1, Q: p, NP: 1, Kind: SmallPrime})
				}
			}
		}

		if E[i] == 0 {
			continue
		}

		// Retry the original m against whatever E[i] the p_i^2 step left.
		if e5 := fcnti(E, uint32(i), f); e5 > 0 {
			applyMerged(E, e5, uint32(i), f)
			total += e5
			appendDesc(rec, FactorDescriptor{N: e5, M: Ms[j], F: f, P: p - 1, Q: p, NP: 1, Kind: SmallPrime})
		}

		if E[i] == 0 {
			continue
		}

		// Scan larger cofactors for a better match.
		for j2 := j + 1; j2 < len(Ms) && E[i] > 0; j2++ {
			m2 := Ms[j2]
			if largestPrimeIndex(st, m2) >= uint32(i) {
				continue
			}
			f3 := factorRecord(st, m2)
			if e3 := fcnti(E, uint32(i), f3); e3 > 0 {
				applyMerged(E, e3, uint32(i), f3)
				total += e3
				appendDesc(rec, FactorDescriptor{N: e3, M: m2, F: f3, P: p - 1, Q: p, NP: 1, Kind: SmallPrime})
			}
		}

		if E[i] == 0 {
			continue
		}

		// Scan larger p_i^2 cofactors similarly.
		mPrime := ceilDiv(t, p*p) + 1
		for c := mPrime; c <= st.Mmax && E[i] > 1; c++ {
			if st.M[c] == 0 || largestPrimeIndex(st, c) >= uint32(i) {
				continue
			}
			f4 := squarePrefix(uint32(i), factorRecord(st, c))
			if e4 := fcnti(E, uint32(i), f4); e4 > 0 {
				applyMerged(E, e4, uint32(i), f4)
				total += e4
				appendDesc(rec, FactorDescriptor{N: e4, M: c, F: f4, P: p - 1, Q: p, NP: 1, Kind: SmallPrime})
			}
		}
	}
	return total, i
}

// fastPassB starts from the prime index where pass A left off and
// greedily assembles composite factors out of small primes, optionally
// closing the gap with a smooth cofactor smaller than every prime
// already used, and restores any never-completed attempt's tentative
// consumption back into E.
func fastPassB(t uint64, E ExponentVector, tb *Tables, start int, rec *[]FactorDescriptor) uint64 {
	st := tb.Smooth
	good := 5 * ceilDiv(t, 4)
	var total uint64

	i := start
	for i >= 1 {
		if E[i] == 0 {
			i--
			continue
		}

		var comp []tables.PP
		addToComp := func(idx int, n uint64) {
			E[idx] -= int64(n)
			if l := len(comp); l > 0 && comp[l-1].PI == uint32(idx) {
				comp[l-1].E += uint8(n)
			} else {
				comp = append(comp, tables.PP{PI: uint32(idx), E: uint8(n)})
			}
		}
		restore := func() {
			for _, pp := range comp {
				E[pp.PI] += int64(pp.E)
			}
		}

		cur := i
		addToComp(cur, 1)
		q := tb.Primes.Prime(cur)
		completed := false

		nextSmallerPrime := func() int {
			next := cur - 1
			for next >= 1 && E[next] == 0 {
				next--
			}
			return next
		}

		for {
			// Bulk phase: keep multiplying primes into q while it is
			// still below good = 5*ceil(t/4) and primes remain.
			for q < good {
				next := nextSmallerPrime()
				if next < 1 {
					break
				}
				cur = next
				addToComp(cur, 1)
				q *= tb.Primes.Prime(cur)
			}
			if q >= t {
				completed = true
				break
			}

			// q is short: look for a smooth cofactor smaller than every
			// prime already used that closes the gap.
			minPrime := tb.Primes.Prime(cur)
			need := ceilDiv(t, q)
			filled := false
			for m := need; m < minPrime && m <= st.Mmax; m++ {
				if st.M[m] == 0 {
					continue
				}
				for _, pp := range factorRecord(st, m) {
					addToComp(int(pp.PI), uint64(pp.E))
				}
				filled = true
				break
			}
			if filled {
				completed = true
				break
			}

			// No gap-filler: bring in the next smaller prime and retry.
			next := nextSmallerPrime()
			if next < 1 {
				break
			}
			cur = next
			addToComp(cur, 1)
			q *= tb.Primes.Prime(cur)
		}

		if !completed {
			restore()
			i--
			continue
		}

		top := comp[0]
		rest := comp[1:]
		capN := uint64(E[top.PI]) / uint64(top.E)
		extra := fcnt(E, capN, rest)
		if extra > 0 {
			for _, pp := range comp {
				E[pp.PI] -= int64(extra) * int64(pp.E)
			}
		}
		n := 1 + extra
		total += n
		appendDesc(rec, FactorDescriptor{N: n, M: 0, F: comp, P: 0, Q: 1, NP: 1, Kind: SmallPrime})
	}
	return total
}
