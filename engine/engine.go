package engine

import (
	"github.com/bfix/egsbound/config"
	"github.com/bfix/egsbound/internal/gerr"
	"github.com/bfix/egsbound/internal/log"
)

// Run executes one engine invocation for (N, t): domain validation,
// exponent vector setup, the large-prime phase, then either the
// feasibility upper bound or the small-prime phase selected by
// tuning.Variant. Pass record=true to retain a replayable log.
func Run(N, t uint64, tuning config.Tuning, tb *Tables, feasible bool, record bool) (*Result, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if N < 14 || N >= (uint64(1)<<48) {
		return nil, gerr.New(gerr.ErrDomainViolation, "N=%d outside [14, 2^48)", N)
	}
	if !(4*t > N && 2*t < N) {
		return nil, gerr.New(gerr.ErrDomainViolation, "t=%d not strictly between N/4 and N/2 (N=%d)", t, N)
	}

	E := NewExponentVector(N, tb)
	var logv []FactorDescriptor
	var recPtr *[]FactorDescriptor
	if record {
		recPtr = &logv
	}

	lpCount, err := largePrimePhase(N, t, E, tb, tuning.Cutoff, recPtr)
	if err != nil {
		return nil, err
	}

	if feasible {
		bound := feasibilityUpperBound(t, E, tb)
		total := lpCount + bound
		return &Result{N: N, T: t, Variant: tuning.Variant, Count: total, Proved: total >= N, Log: logv, E: E}, nil
	}

	var spCount uint64
	switch tuning.Variant {
	case config.Standard:
		spCount = smallPrimeStandard(t, E, tb, recPtr)
	case config.Fast:
		aTotal, lastI := fastPassA(t, E, tb, recPtr)
		spCount = aTotal + fastPassB(t, E, tb, lastI, recPtr)
	default:
		return nil, gerr.New(gerr.ErrDomainViolation, "unknown variant %d", tuning.Variant)
	}

	total := lpCount + spCount
	log.Printf(log.DBG, "N=%d t=%d variant=%d count=%d surplus=%d", N, t, tuning.Variant, total, int64(total)-int64(N))
	return &Result{N: N, T: t, Variant: tuning.Variant, Count: total, Proved: total >= N, Log: logv, E: E}, nil
}
