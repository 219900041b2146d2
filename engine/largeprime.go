package engine

import (
	"math"

	"github.com/bfix/egsbound/internal/gerr"
	"github.com/bfix/egsbound/tables"
)

func ceilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}

// piAny returns pi(x), routing through the static P_max table when x is
// within it and falling back to the general-purpose PiExact otherwise.
// R3 and the tail blocks call this twice per sub-block to get the exact
// prime count by differencing.
func piAny(tb *Tables, x uint64) uint64 {
	if x <= tb.Primes.Pmax {
		return tb.Primes.Pi(x)
	}
	return tables.PiExact(x)
}

// vpTwoTerm computes v_p(N!) truncated to its first two terms,
// floor(N/p) + floor(N/p^2), which is exact throughout the large-prime
// phase since p >= s means p^3 > N for every N, t in the domain
// envelope.
func vpTwoTerm(N, p, sqrtN uint64) uint64 {
	term1 := N / p
	if p > sqrtN {
		return term1
	}
	return term1 + N/(p*p)
}

func smoothFactor(st *tables.SmoothTable, m uint64) ([]tables.PP, error) {
	if m == 0 || m > st.Mmax || st.M[m] == 0 {
		return nil, gerr.New(gerr.ErrResourceBound, "cofactor %d not in smooth table (Mmax=%d)", m, st.Mmax)
	}
	return factorRecord(st, m), nil
}

func applyFactor(E ExponentVector, n uint64, f []tables.PP) {
	for _, pp := range f {
		E[pp.PI] -= int64(n) * int64(pp.E)
	}
}

// largePrimePhase covers regimes R1, R2, R3 for primes p in [s, t), and
// the three tail blocks for p in [t, N]. It returns the total factor
// count contributed and appends descriptors to *rec if rec is non-nil.
func largePrimePhase(N, t uint64, E ExponentVector, tb *Tables, cutoff float64, rec *[]FactorDescriptor) (uint64, error) {
	sqrtN := isqrtU(N)

	// s = smallest integer with s*(s-1) >= t.
	s := isqrtU(t)
	if s < 1 {
		s = 1
	}
	for s*(s-1) < t {
		s++
	}

	// p_mid = min(floor(t^mu), floor((t-1)/floor(sqrt(N)))), clamped so
	// R2/R3 never runs below sqrt(N) regardless of which term wins.
	pmid := uint64(math.Floor(math.Pow(float64(t), cutoff)))
	if sqrtN > 0 {
		alt := (t - 1) / sqrtN
		if alt < pmid {
			pmid = alt
		}
	}
	if pmid < sqrtN {
		pmid = sqrtN
	}

	var total uint64

	// R1: p in [s, sqrt(N)], enumerated one at a time.
	for _, p := range tb.Enum.Primes(s, sqrtN) {
		m := ceilDiv(t, p)
		n := vpTwoTerm(N, p, sqrtN)
		f, err := smoothFactor(tb.Smooth, m)
		if err != nil {
			return total, err
		}
		applyFactor(E, n, f)
		if p <= tb.Primes.Pmax {
			E[tb.Primes.Pi(p)] -= int64(n)
		}
		total += n * 1
		appendDesc(rec, FactorDescriptor{N: n, M: m, F: f, P: p - 1, Q: p, NP: 1, Kind: LargePrime})
	}

	// R2: p in (sqrt(N), p_mid], batched by runs sharing (m, n).
	r2 := tb.Enum.Primes(sqrtN+1, pmid)
	for i := 0; i < len(r2); {
		p := r2[i]
		m := ceilDiv(t, p)
		n := vpTwoTerm(N, p, sqrtN)
		j := i
		for j+1 < len(r2) {
			p2 := r2[j+1]
			if ceilDiv(t, p2) != m || vpTwoTerm(N, p2, sqrtN) != n {
				break
			}
			j++
		}
		c := uint64(j - i + 1)
		f, err := smoothFactor(tb.Smooth, m)
		if err != nil {
			return total, err
		}
		applyFactor(E, n*c, f)
		total += n * c
		appendDesc(rec, FactorDescriptor{N: n, M: m, F: f, P: r2[i] - 1, Q: r2[j], NP: c, Kind: LargePrime})
		i = j + 1
	}

	// R3: p in (p_mid, t-1], iterated by cofactor m = m_mid .. 2.
	if pmid+1 <= t-1 {
		mMid := ceilDiv(t, pmid+1)
		lo, hi := pmid+1, t-1
		for m := mMid; m >= 2; m-- {
			pLow := ceilDiv(t, m)
			pHigh := (t - 1) / (m - 1)
			if pLow < lo {
				pLow = lo
			}
			if pHigh > hi {
				pHigh = hi
			}
			if pLow > pHigh {
				continue
			}
			f, err := smoothFactor(tb.Smooth, m)
			if err != nil {
				return total, err
			}
			c, err := processMBlock(N, tb, E, m, f, pLow, pHigh, rec)
			if err != nil {
				return total, err
			}
			total += c
		}
	}

	// Tail: p in [t, N], three fixed-n blocks.
	fEmpty, err := smoothFactor(tb.Smooth, 1)
	if err != nil {
		return total, err
	}
	addTailBlock := func(lo, hi, n uint64) error {
		if hi < lo {
			return nil
		}
		c := piAny(tb, hi) - piAny(tb, lo-1)
		if c == 0 {
			return nil
		}
		applyFactor(E, n*c, fEmpty)
		total += n * c
		appendDesc(rec, FactorDescriptor{N: n, M: 1, F: fEmpty, P: lo - 1, Q: hi, NP: c, Kind: LargePrime})
		return nil
	}
	if 3*t <= N {
		if err := addTailBlock(t, N/3, 3); err != nil {
			return total, err
		}
	}
	b2lo := t - 1
	if N/3 > b2lo {
		b2lo = N / 3
	}
	if err := addTailBlock(b2lo+1, N/2, 2); err != nil {
		return total, err
	}
	if err := addTailBlock(N/2+1, N, 1); err != nil {
		return total, err
	}

	if !E.Valid() {
		return total, gerr.New(gerr.ErrInvariantBreach, "negative exponent after large-prime phase (N=%d t=%d)", N, t)
	}
	return total, nil
}

// processMBlock handles one fixed-cofactor block of R3, sub-divided at
// every breakpoint where n = v_p(N!) changes, each sub-block's count
// obtained by differencing two pi() evaluations.
func processMBlock(N uint64, tb *Tables, E ExponentVector, m uint64, f []tables.PP, lo, hi uint64, rec *[]FactorDescriptor) (uint64, error) {
	sqrtN := isqrtU(N)
	var total uint64
	prevBoundary := lo - 1
	p := lo
	for p <= hi {
		n := vpTwoTerm(N, p, sqrtN)
		pnMax := hi
		if n > 0 {
			if cand := N / n; cand < pnMax {
				pnMax = cand
			}
		}
		c := piAny(tb, pnMax) - piAny(tb, prevBoundary)
		if c > 0 {
			applyFactor(E, n*c, f)
			total += n * c
			appendDesc(rec, FactorDescriptor{N: n, M: m, F: f, P: prevBoundary, Q: pnMax, NP: c, Kind: LargePrime})
		}
		prevBoundary = pnMax
		p = pnMax + 1
	}
	return total, nil
}

func appendDesc(rec *[]FactorDescriptor, d FactorDescriptor) {
	if rec != nil {
		*rec = append(*rec, d)
	}
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
