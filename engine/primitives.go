package engine

import "github.com/bfix/egsbound/tables"

// fcnt returns min(e, min over f's primes pi of floor(E[pi]/f.e)): how
// many copies of the number whose factorization is f still fit in the
// residual, capped at e. Pure: does not mutate E.
func fcnt(E ExponentVector, e uint64, f []tables.PP) uint64 {
	res := e
	for _, pp := range f {
		if pp.PI == 0 {
			break
		}
		avail := uint64(E[pp.PI]) / uint64(pp.E)
		if avail < res {
			res = avail
		}
	}
	return res
}

// fcnti is fcnt with an extra factor p_i pre-merged: if p_i coincides
// with f's top prime, that prime's required exponent becomes f.e+1
// instead of f.e. This is how "m*p_i" is budgeted in the standard
// greedy.
func fcnti(E ExponentVector, i uint32, f []tables.PP) uint64 {
	merged := false
	res := ^uint64(0)
	for _, pp := range f {
		if pp.PI == 0 {
			break
		}
		req := uint64(pp.E)
		if pp.PI == i {
			req++
			merged = true
		}
		avail := uint64(E[pp.PI]) / req
		if avail < res {
			res = avail
		}
	}
	if !merged {
		avail := uint64(E[i])
		if avail < res {
			res = avail
		}
	}
	if res == ^uint64(0) {
		return 0
	}
	return res
}

// factorRecord returns the stored factorization of a known P_max-smooth
// value m, reading the arena until the zero-pi terminator.
func factorRecord(st *tables.SmoothTable, m uint64) []tables.PP {
	off := st.M[m]
	var out []tables.PP
	for st.F[off].PI != 0 {
		out = append(out, st.F[off])
		off++
	}
	return out
}

// largestPrimeIndex returns the largest prime index dividing the known
// smooth value m, or 0 if m == 1.
func largestPrimeIndex(st *tables.SmoothTable, m uint64) uint32 {
	off := st.M[m]
	return st.F[off].PI
}
