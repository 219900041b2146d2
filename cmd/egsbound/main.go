// Command egsbound is a thin driver over the search and engine
// packages, kept deliberately minimal: no subcommands, no config file,
// no flag-parsing robustness beyond the standard library's.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bfix/egsbound/config"
	"github.com/bfix/egsbound/dump"
	"github.com/bfix/egsbound/engine"
	"github.com/bfix/egsbound/hint"
	"github.com/bfix/egsbound/internal/log"
	"github.com/bfix/egsbound/search"
	"github.com/bfix/egsbound/verify"
)

func main() {
	var (
		tFlag      = flag.Uint64("t", 0, "target t; if 0, a/b ratio is used to search for the largest provable t")
		aFlag      = flag.Uint64("a", 1, "ratio numerator a (1/4 <= a/b <= 2/5)")
		bFlag      = flag.Uint64("b", 3, "ratio denominator b")
		nloFlag    = flag.Uint64("n", 0, "N, or the low end of an N-range batch run")
		nhiFlag    = flag.Uint64("nhi", 0, "high end of an N-range batch run; 0 means single-N mode")
		fast       = flag.Bool("fast", true, "use the fast small-prime greedy instead of the standard one")
		exhaustive = flag.Bool("exhaustive", false, "exhaustively check every t in the uncertain interval")
		doVerify   = flag.Bool("verify", false, "independently replay the factorization log and check it")
		cutoff     = flag.Float64("cutoff", config.CutoffDefault, "large-prime regime cutoff mu in [0.2, 0.3]")
		hintOut    = flag.String("hint-out", "", "write proved (N,t) pairs to this hint file")
		dumpOut    = flag.String("dump-out", "", "write the factorization log to this dump file")
		workers    = flag.Int("workers", 0, "worker pool size for -exhaustive; 0 picks GOMAXPROCS")
	)
	flag.Parse()

	variant := config.Standard
	if *fast {
		variant = config.Fast
	}
	tuning := config.Tuning{Cutoff: *cutoff, Variant: variant, Workers: *workers}
	if err := tuning.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "egsbound:", err)
		os.Exit(1)
	}

	ratio := search.Ratio{A: *aFlag, B: *bFlag}

	if *nhiFlag != 0 {
		if *nloFlag == 0 {
			fmt.Fprintln(os.Stderr, "egsbound: -n is required with -nhi")
			os.Exit(1)
		}
		w := os.Stdout
		if *hintOut != "" {
			f, err := os.Create(*hintOut)
			if err != nil {
				fmt.Fprintln(os.Stderr, "egsbound:", err)
				os.Exit(1)
			}
			defer f.Close()
			if err := search.Batch(context.Background(), *nloFlag, *nhiFlag, ratio, tuning, *exhaustive, f); err != nil {
				fmt.Fprintln(os.Stderr, "egsbound:", err)
				os.Exit(1)
			}
			return
		}
		if err := search.Batch(context.Background(), *nloFlag, *nhiFlag, ratio, tuning, *exhaustive, w); err != nil {
			fmt.Fprintln(os.Stderr, "egsbound:", err)
			os.Exit(1)
		}
		return
	}

	N := *nloFlag
	if N == 0 {
		fmt.Fprintln(os.Stderr, "egsbound: -n is required")
		os.Exit(1)
	}

	var result *engine.Result
	var err error
	if *tFlag != 0 {
		tb := engine.NewTables(N, *tFlag)
		result, err = engine.Run(N, *tFlag, tuning, tb, false, *doVerify || *dumpOut != "")
	} else {
		var sr *search.Result
		sr, err = search.Bisect(N, ratio, tuning)
		if err == nil && *exhaustive {
			sr, err = search.Exhaustive(context.Background(), N, tuning, sr)
		}
		if err == nil {
			result = sr.Best
			if (*doVerify || *dumpOut != "") && result.T != 0 {
				// Bisect/Exhaustive never record a replayable log (every
				// probe but the winner would be wasted work); re-run the
				// winning t once more with recording on for reporting.
				tb := engine.NewTables(result.N, result.T)
				result, err = engine.Run(result.N, result.T, tuning, tb, false, true)
			}
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "egsbound:", err)
		os.Exit(1)
	}

	fmt.Printf("N=%d t=%d count=%d proved=%v surplus=%d\n", result.N, result.T, result.Count, result.Proved, result.Surplus())

	if *doVerify {
		tb := engine.NewTables(result.N, result.T)
		rep := verify.Replay(result.N, result.T, result.Log, tb)
		if !rep.Valid {
			fmt.Fprintln(os.Stderr, "egsbound: verification failed:", rep.Failure)
			os.Exit(1)
		}
		if rep.Count != result.Count {
			fmt.Fprintf(os.Stderr, "egsbound: verification count mismatch: replay=%d engine=%d\n", rep.Count, result.Count)
			os.Exit(1)
		}
		fmt.Println("verification: OK")
	}

	if *dumpOut != "" {
		f, err := os.Create(*dumpOut)
		if err != nil {
			fmt.Fprintln(os.Stderr, "egsbound:", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := dump.Write(f, result.Log); err != nil {
			fmt.Fprintln(os.Stderr, "egsbound:", err)
			os.Exit(1)
		}
	}

	if *hintOut != "" && result.Proved {
		f, err := os.Create(*hintOut)
		if err != nil {
			fmt.Fprintln(os.Stderr, "egsbound:", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := hint.Write(f, []hint.Record{{N: result.N, T: result.T}}); err != nil {
			fmt.Fprintln(os.Stderr, "egsbound:", err)
			os.Exit(1)
		}
	}

	log.Println(log.INFO, "[egsbound] done")
}
