// Package search drives the engine across a range of t (bisection) or a
// range of N (batch/hint mode), and optionally refines a bisection
// result with an exhaustive parallel scan of the uncertain interval.
package search

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/bfix/egsbound/config"
	"github.com/bfix/egsbound/engine"
	"github.com/bfix/egsbound/internal/gerr"
	"github.com/bfix/egsbound/internal/log"
	"golang.org/x/sync/errgroup"
)

// Ratio bounds the search's starting point t0 = ceil(a*N/b), with a/b
// restricted to [1/4, 2/5] to match the domain envelope.
type Ratio struct {
	A, B uint64
}

// Result is the outcome of a bisection (and, if requested, exhaustive
// refinement) search for one N.
type Result struct {
	N      uint64
	T      uint64 // largest t proved
	Best   *engine.Result
	Probes int // number of engine invocations used, informational
}

func ceilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}

// Bisect finds an initial t0 = ceil(a*N/b), lowers it until the engine
// proves it (rarely needed), then bisects [tmin, tmax) with tmax
// starting at floor(2N/5), using the heuristic step
// t*exp((count-N)*log(t)/N) to pick the next probe.
func Bisect(N uint64, ratio Ratio, tuning config.Tuning) (*Result, error) {
	if ratio.B == 0 || 4*ratio.A < ratio.B || 5*ratio.A > 2*ratio.B {
		return nil, gerr.New(gerr.ErrDomainViolation, "ratio %d/%d outside [1/4, 2/5]", ratio.A, ratio.B)
	}

	t := ceilDiv(ratio.A*N, ratio.B)
	if t <= N/4 {
		t = N/4 + 1
	}
	probes := 0

	probe := func(tt uint64) (*engine.Result, error) {
		tb := engine.NewTables(N, tt)
		probes++
		return engine.Run(N, tt, tuning, tb, false, false)
	}

	res, err := probe(t)
	if err != nil {
		return nil, err
	}
	// Step 1: rarely invoked -- lower t until the engine proves it.
	for !res.Proved {
		if t <= N/4+1 {
			return &Result{N: N, T: 0, Best: res, Probes: probes}, nil
		}
		t--
		res, err = probe(t)
		if err != nil {
			return nil, err
		}
	}

	tmin, best := t, res
	tmax := 2 * N / 5

	for tmin+1 < tmax {
		count := float64(best.Count)
		step := math.Exp((count - float64(N)) * math.Log(float64(tmin)) / float64(N))
		next := uint64(float64(tmin) * step)
		if next <= tmin {
			next = tmin + 1
		}
		if next >= tmax {
			next = tmax - 1
		}
		if next <= tmin {
			break
		}
		r, err := probe(next)
		if err != nil {
			return nil, err
		}
		if r.Proved {
			tmin, best = next, r
		} else {
			tmax = next
		}
	}

	log.Printf(log.INFO, "[search] N=%d bisection settled t=%d (probes=%d)", N, tmin, probes)
	return &Result{N: N, T: tmin, Best: best, Probes: probes}, nil
}

// feasibleBoundary binary-searches for the largest t in [lo, hi) at
// which the feasibility upper bound is still >= N, giving the
// uncertain interval's far end t_max' for exhaustive refinement.
// Feasibility mode still requires the large-prime phase to have
// succeeded, which engine.Run checks on its own.
func feasibleBoundary(N, lo, hi uint64, tuning config.Tuning) (uint64, error) {
	ok := func(tt uint64) (bool, error) {
		tb := engine.NewTables(N, tt)
		r, err := engine.Run(N, tt, tuning, tb, true, false)
		if err != nil {
			return false, err
		}
		return r.Proved, nil
	}
	good, err := ok(lo)
	if err != nil {
		return 0, err
	}
	if !good {
		return lo, nil
	}
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		g, err := ok(mid)
		if err != nil {
			return 0, err
		}
		if g {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// Exhaustive refines a Bisect result by checking every integer t in the
// uncertain interval (res.T, t_max') across a fixed-size worker pool,
// one residue class of t modulo the worker count per worker. A single
// mutex guards the shared best-known t; the first internal invariant
// breach aborts the whole scan via errgroup.
func Exhaustive(ctx context.Context, N uint64, tuning config.Tuning, res *Result) (*Result, error) {
	tmaxOrig := 2 * N / 5
	tmaxPrime, err := feasibleBoundary(N, res.T, tmaxOrig, tuning)
	if err != nil {
		return nil, err
	}
	if tmaxPrime <= res.T {
		return res, nil
	}

	workers := tuning.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var mu sync.Mutex
	best := res.Best
	bestT := res.T

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for tt := res.T + 1 + uint64(w); tt < tmaxPrime; tt += uint64(workers) {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				tb := engine.NewTables(N, tt)
				r, err := engine.Run(N, tt, tuning, tb, false, false)
				if err != nil {
					return err
				}
				if r.Proved {
					mu.Lock()
					if tt > bestT {
						bestT = tt
						best = r
					}
					mu.Unlock()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf(log.INFO, "[search] N=%d exhaustive settled t=%d (workers=%d, range=(%d,%d))", N, bestT, workers, res.T, tmaxPrime)
	return &Result{N: N, T: bestT, Best: best, Probes: res.Probes}, nil
}
