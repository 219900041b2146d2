package engine

import "github.com/bfix/egsbound/tables"

// applyMerged subtracts e copies of "p_i * (number whose factorization is
// f)" from E, honoring the same merge rule fcnti uses: if f already
// contains index i, that entry's requirement grows by one instead of a
// separate deduction.
func applyMerged(E ExponentVector, e uint64, i uint32, f []tables.PP) {
	merged := false
	for _, pp := range f {
		req := uint64(pp.E)
		if pp.PI == i {
			req++
			merged = true
		}
		E[pp.PI] -= int64(e) * int64(req)
	}
	if !merged {
		E[i] -= int64(e)
	}
}

// residualPrimeCount sums E[1..] with multiplicity.
func residualPrimeCount(E ExponentVector) int64 {
	var n int64
	for _, v := range E {
		if v > 0 {
			n += v
		}
	}
	return n
}

// residualBelowT reports whether the product of every remaining prime
// power in E, computed exactly with an overflow guard, is below t.
func residualBelowT(E ExponentVector, tb *Tables, t uint64) bool {
	prod := uint64(1)
	maxU := ^uint64(0)
	for i := 1; i < len(E); i++ {
		for k := int64(0); k < E[i]; k++ {
			p := tb.Primes.Prime(i)
			if prod > maxU/p {
				return false
			}
			prod *= p
			if prod >= t {
				return false
			}
		}
	}
	return prod < t
}

// smallPrimeStandard is the baseline small-prime greedy: i descends
// from π(P_max), j advances monotonically through the smooth-cofactor
// list Ms, and i only moves on once E[i] is used up; a cofactor that
// yields no factor is skipped.
func smallPrimeStandard(t uint64, E ExponentVector, tb *Tables, rec *[]FactorDescriptor) uint64 {
	st := tb.Smooth
	Ms := st.Ms
	j := 0
	var total uint64

	i := tb.Primes.NumPrimes()
	for i >= 1 {
		if E[i] == 0 {
			i--
			continue
		}
		p := tb.Primes.Prime(i)

		for j < len(Ms) && (Ms[j]*p < t || largestPrimeIndex(st, Ms[j]) > uint32(i)) {
			j++
		}
		if j >= len(Ms) {
			break
		}

		f := factorRecord(st, Ms[j])
		e := fcnti(E, uint32(i), f)
		if e > 0 {
			applyMerged(E, e, uint32(i), f)
			total += e
			appendDesc(rec, FactorDescriptor{N: e, M: Ms[j], F: f, P: p - 1, Q: p, NP: 1, Kind: SmallPrime})
			continue
		}

		if residualPrimeCount(E) < 40 {
			if residualBelowT(E, tb, t) {
				break
			}
		}
		j++
	}
	return total
}
