// Package engine is the greedy factorization core: given N and a target
// t with N/4 < t < N/2, it allocates a multiset of factors of N!, each
// >= t, while tracking the remaining p-adic valuations of N! in an
// exponent vector E.
package engine

import (
	"github.com/bfix/egsbound/config"
	"github.com/bfix/egsbound/tables"
)

// ExponentVector holds E[i] = v_{p_i}(N!) for every prime index
// i <= pi(P_max), mutated monotonically downward as factors are
// extracted; the large-prime phase uses up the entries of primes >= s,
// leaving only primes below s to the small-prime phase. It is owned by a
// single engine invocation and never shared across goroutines.
type ExponentVector []int64

// Clone returns an independent copy, used by the verifier to replay a
// log against a freshly rebuilt E.
func (e ExponentVector) Clone() ExponentVector {
	out := make(ExponentVector, len(e))
	copy(out, e)
	return out
}

// Valid reports whether every entry is non-negative, the invariant the
// large-prime phase must leave intact and that every factor extraction
// must preserve throughout.
func (e ExponentVector) Valid() bool {
	for _, v := range e {
		if v < 0 {
			return false
		}
	}
	return true
}

// Kind distinguishes which phase produced a descriptor, since the
// verifier applies extra checks (n's formula, m*(p+1)>=t) only to
// large-prime descriptors.
type Kind uint8

const (
	LargePrime Kind = iota
	SmallPrime
)

// FactorDescriptor records "there are NP primes in (P, Q], each
// contributing N identical factors of the form M*p, giving NP*N factors
// overall; the factorization of M is F". When P+1 == Q this degenerates
// to a single prime Q with multiplicity N. Small-prime composite
// descriptors (pass B) instead set P=0, Q=1 and place the full
// factorization, prime included, in F.
//
// NP is the actual prime count in (P, Q] -- it is NOT generally Q-P,
// since a large-prime descriptor's P and Q are value boundaries that
// can straddle composites (R2's contiguous runs, R3 and the tail's
// pi()-differenced blocks). It must be supplied by whatever builds the
// descriptor, which already knows the true count from the pi() lookup
// or enumeration it used to decide the descriptor's extent in the
// first place.
type FactorDescriptor struct {
	N    uint64      // multiplicity per prime
	M    uint64      // cofactor (informational for small-prime descriptors)
	F    []tables.PP // factorization of M, descending by prime index
	P    uint64      // open lower bound of prime interval
	Q    uint64      // closed upper bound of prime interval
	NP   uint64      // actual prime count in (P, Q]
	Kind Kind
}

// Count returns the number of factors this descriptor contributes.
func (d FactorDescriptor) Count() uint64 {
	return d.N * d.NP
}

// Result is what a single engine invocation reports.
type Result struct {
	N, T    uint64
	Variant config.Variant
	Count   uint64 // total factors allocated (or, in feasibility mode, the upper bound)
	Proved  bool   // Count >= N
	Log     []FactorDescriptor
	E       ExponentVector // residual exponent vector after the run
}

// Surplus returns Count - N as a signed value: positive means the
// target t is proved with room to spare, negative means the engine
// fell short.
func (r *Result) Surplus() int64 {
	return int64(r.Count) - int64(r.N)
}

// Tables bundles the immutable, shared setup artifacts one engine
// invocation (or exhaustive-search worker) reads from.
type Tables struct {
	Primes *tables.PrimeTable
	Enum   *tables.Enumerator
	Smooth *tables.SmoothTable
}
