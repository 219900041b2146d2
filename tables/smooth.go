package tables

// PP is a prime-power record (pi, e): pi a prime index, e >= 1 an
// exponent. PI == 0 terminates a factorization record. PI == 1 with
// E > 0 is used transiently to inject a power of 2 into an even
// number's factorization.
type PP struct {
	PI uint32
	E  uint8
}

// SmoothTable is the factorization store F and its index M, built once
// for every P_max-smooth integer m <= M_max.
type SmoothTable struct {
	Mmax uint64
	// F concatenates all stored factorization records. Offset 0 is an
	// unused sentinel.
	F []PP
	// M[m] is the offset into F of m's record, or 0 if m is not
	// P_max-smooth (or m == 0).
	M []uint64
	// Ms lists every P_max-smooth m in [1, Mmax], ascending; the
	// small-prime phases walk this list with an increasing cursor.
	Ms []uint64
}

// BuildSmoothTable constructs F and M for every integer up to mmax,
// using only the primes indexed by pt.
func BuildSmoothTable(pt *PrimeTable, mmax uint64) *SmoothTable {
	if mmax < 1 {
		mmax = 1
	}
	// Step 2: candidate largest-prime-index sieve. Ascending primes so
	// the last write at each multiple is that multiple's largest prime
	// factor among primes indexed by pt; composites with an
	// out-of-table factor incorrectly keep a stale candidate here and
	// are caught and zeroed out during peeling in step 3.
	candidate := make([]uint32, mmax+1)
	for pi := 1; pi <= pt.NumPrimes(); pi++ {
		p := pt.Prime(pi)
		if p > mmax {
			break
		}
		for q := p; q <= mmax; q += p {
			candidate[q] = uint32(pi)
		}
	}

	st := &SmoothTable{Mmax: mmax}
	st.F = make([]PP, 1, mmax) // offset 0 reserved, unused
	st.M = make([]uint64, mmax+1)

	// M[1] points directly at the terminator: the empty product.
	emptyOffset := uint64(len(st.F))
	st.F = append(st.F, PP{})
	st.M[1] = emptyOffset

	// Step 3a: odd m, peeling the largest prime factor repeatedly.
	for m := uint64(3); m <= mmax; m += 2 {
		cur := m
		var factors []PP
		smooth := true
		for cur != 1 {
			pi := candidate[cur]
			if pi == 0 {
				smooth = false
				break
			}
			p := pt.Prime(int(pi))
			var e uint8
			for cur%p == 0 {
				cur /= p
				e++
			}
			factors = append(factors, PP{PI: pi, E: e})
		}
		if !smooth {
			st.M[m] = 0
			continue
		}
		off := uint64(len(st.F))
		st.F = append(st.F, factors...)
		st.F = append(st.F, PP{})
		st.M[m] = off
	}

	// Step 3b: even m = 2^e * qOdd; smooth iff qOdd is smooth.
	for m := uint64(2); m <= mmax; m += 2 {
		cur := m
		var e uint8
		for cur%2 == 0 {
			cur /= 2
			e++
		}
		qOdd := cur

		var baseOff uint64
		smooth := true
		switch {
		case qOdd == 1:
			baseOff = emptyOffset
		case st.M[qOdd] != 0:
			baseOff = st.M[qOdd]
		default:
			smooth = false
		}
		if !smooth {
			st.M[m] = 0
			continue
		}
		off := uint64(len(st.F))
		for p := baseOff; st.F[p].PI != 0; p++ {
			st.F = append(st.F, st.F[p])
		}
		st.F = append(st.F, PP{PI: 1, E: e})
		st.F = append(st.F, PP{})
		st.M[m] = off
	}

	st.Ms = make([]uint64, 0, mmax/3+1)
	st.Ms = append(st.Ms, 1)
	for m := uint64(2); m <= mmax; m++ {
		if st.M[m] != 0 {
			st.Ms = append(st.Ms, m)
		}
	}
	return st
}
