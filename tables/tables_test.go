package tables

import "testing"

func TestBuildPrimeTable(t *testing.T) {
	pt := BuildPrimeTable(30)
	want := []uint64{1, 2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if pt.NumPrimes() != len(want)-1 {
		t.Fatalf("NumPrimes() = %d, want %d", pt.NumPrimes(), len(want)-1)
	}
	for i, p := range want {
		if pt.Prime(i) != p {
			t.Errorf("Prime(%d) = %d, want %d", i, pt.Prime(i), p)
		}
	}
	for x := uint64(0); x <= 30; x++ {
		var want uint64
		for _, p := range []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29} {
			if p <= x {
				want++
			}
		}
		if pt.Pi(x) != want {
			t.Errorf("Pi(%d) = %d, want %d", x, pt.Pi(x), want)
		}
	}
}

func TestIsPrime(t *testing.T) {
	pt := BuildPrimeTable(50)
	for x := uint64(2); x <= 50; x++ {
		want := pt.Pi(x) != pt.Pi(x-1)
		if pt.IsPrime(x) != want {
			t.Errorf("IsPrime(%d) = %v, want %v", x, pt.IsPrime(x), want)
		}
	}
	if pt.IsPrime(0) || pt.IsPrime(1) {
		t.Error("IsPrime(0 or 1) should be false")
	}
	if pt.IsPrime(49) {
		t.Errorf("IsPrime(49) should be false (7*7)")
	}
}

func TestPiExactMatchesTable(t *testing.T) {
	pt := BuildPrimeTable(1000)
	for x := uint64(0); x <= 1000; x += 7 {
		if got, want := PiExact(x), pt.Pi(x); got != want {
			t.Errorf("PiExact(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestPiExactBeyondTable(t *testing.T) {
	// pi(10^6) = 78498, a well-known reference value.
	if got := PiExact(1000000); got != 78498 {
		t.Errorf("PiExact(1e6) = %d, want 78498", got)
	}
	if got := PiExact(100); got != 25 {
		t.Errorf("PiExact(100) = %d, want 25", got)
	}
}

func TestEnumeratorPrimes(t *testing.T) {
	e := NewEnumerator(200)
	got := e.Primes(100, 120)
	want := []uint64{101, 103, 107, 109, 113}
	if len(got) != len(want) {
		t.Fatalf("Primes(100,120) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Primes(100,120)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEnumeratorCountMatchesPrimes(t *testing.T) {
	e := NewEnumerator(500)
	if got, want := e.Count(2, 500), uint64(len(e.Primes(2, 500))); got != want {
		t.Errorf("Count mismatch: %d vs %d", got, want)
	}
}

// product reconstructs m, and records are in strictly descending pi order.
func TestSmoothTableInvariants(t *testing.T) {
	pt := BuildPrimeTable(30) // primes up to 29
	st := BuildSmoothTable(pt, 500)

	if st.M[1] == 0 {
		t.Fatal("M[1] must point to a record")
	}
	if st.F[st.M[1]].PI != 0 {
		t.Fatal("M[1] must point directly at the terminator (empty product)")
	}

	for m := uint64(1); m <= 500; m++ {
		off := st.M[m]
		if off == 0 {
			continue // not known-smooth (or non-smooth beyond P_max=29)
		}
		var prev uint32 = ^uint32(0)
		var prod uint64 = 1
		for st.F[off].PI != 0 {
			pp := st.F[off]
			if pp.PI >= prev {
				t.Fatalf("m=%d: pi values not strictly descending (pi=%d after %d)", m, pp.PI, prev)
			}
			prev = pp.PI
			if pp.E < 1 {
				t.Fatalf("m=%d: exponent %d < 1", m, pp.E)
			}
			p := pt.Prime(int(pp.PI))
			for e := uint8(0); e < pp.E; e++ {
				prod *= p
			}
			off++
		}
		if prod != m {
			t.Errorf("m=%d: record multiplies back to %d", m, prod)
		}
	}
}

func TestSmoothTableMsAscending(t *testing.T) {
	pt := BuildPrimeTable(30)
	st := BuildSmoothTable(pt, 200)
	for i := 1; i < len(st.Ms); i++ {
		if st.Ms[i] <= st.Ms[i-1] {
			t.Fatalf("Ms not strictly ascending at index %d: %d <= %d", i, st.Ms[i], st.Ms[i-1])
		}
		if st.M[st.Ms[i]] == 0 {
			t.Fatalf("Ms[%d]=%d has M[m]==0", i, st.Ms[i])
		}
	}
}

func TestSmoothTableRejectsNonSmooth(t *testing.T) {
	pt := BuildPrimeTable(10) // primes up to 7
	st := BuildSmoothTable(pt, 50)
	// 11 is prime and not indexed by pt, so 11 and every multiple of an
	// out-of-table prime must be rejected as non-smooth.
	if st.M[11] != 0 {
		t.Errorf("M[11] should be 0 (11 is not 7-smooth w.r.t. this table)")
	}
	if st.M[22] != 0 {
		t.Errorf("M[22] should be 0 (22 = 2*11, 11 not in table)")
	}
	// 48 = 2^4 * 3 is 7-smooth and must be present.
	if st.M[48] == 0 {
		t.Errorf("M[48] should be present (48 = 2^4*3)")
	}
}
