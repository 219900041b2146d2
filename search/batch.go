package search

import (
	"context"
	"io"

	"github.com/bfix/egsbound/config"
	"github.com/bfix/egsbound/hint"
	"github.com/bfix/egsbound/internal/gerr"
	"github.com/bfix/egsbound/internal/log"
)

// Batch runs Bisect (and, if exhaustive is set, Exhaustive) for every N
// in [nlo, nhi], writing one hint record per N as it completes. It
// enforces the hint-file invariants itself as it goes: a batch run that
// would produce a gap, a regression or a ratio violation aborts immediately with no partial
// file accepted beyond what was already flushed -- callers wanting
// atomicity should write to a temp file and rename only on success.
func Batch(ctx context.Context, nlo, nhi uint64, ratio Ratio, tuning config.Tuning, exhaustive bool, w io.Writer) error {
	var prev *hint.Record
	for N := nlo; N <= nhi; N++ {
		res, err := Bisect(N, ratio, tuning)
		if err != nil {
			return err
		}
		if exhaustive {
			res, err = Exhaustive(ctx, N, tuning, res)
			if err != nil {
				return err
			}
		}
		if res.T == 0 {
			return gerr.New(gerr.ErrHintGap, "N=%d: no t proved the required ratio", N)
		}
		rec := hint.Record{N: N, T: res.T}
		if prev != nil {
			if rec.N <= prev.N {
				return gerr.New(gerr.ErrHintGap, "N=%d not strictly increasing after %d", rec.N, prev.N)
			}
			if ratio.B*rec.T <= ratio.A*rec.N {
				return gerr.New(gerr.ErrHintGap, "ratio violated for N=%d t=%d", rec.N, rec.T)
			}
			maxV := ratio.B * prev.T / ratio.A
			if rec.N > maxV+1 {
				return gerr.New(gerr.ErrHintGap, "gap before N=%d (verified range ends at %d)", rec.N, maxV)
			}
		}
		if err := hint.Write(w, []hint.Record{rec}); err != nil {
			return err
		}
		prev = &rec
		log.Printf(log.INFO, "[batch] N=%d t=%d proved", N, res.T)
	}
	return nil
}
