// Package hint reads and writes the line-oriented hint file format
// "N:t\n" that records a batch search's proved lower bounds, enforcing
// strict monotonicity and the no-gap invariant between records.
package hint

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bfix/egsbound/internal/gerr"
)

// Record is one proved (N, t) pair.
type Record struct {
	N uint64
	T uint64
}

// Ratio is the a/b proof ratio a record's gap is checked against
// (b*t' > a*N and N' <= floor(b*t/a) + 1).
type Ratio struct {
	A, B uint64
}

// Read parses every record from r, checking N strictly increasing and
// each record's ratio and gap against the previous one. The first
// violation is fatal: no partial prefix is returned.
func Read(r io.Reader, ratio Ratio) ([]Record, error) {
	sc := bufio.NewScanner(r)
	var out []Record
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, gerr.New(gerr.ErrHintGap, "line %d: %v", lineNo, err)
		}
		if len(out) > 0 {
			prev := out[len(out)-1]
			if rec.N <= prev.N {
				return nil, gerr.New(gerr.ErrHintGap, "line %d: N=%d not strictly increasing after %d", lineNo, rec.N, prev.N)
			}
			if ratio.B*rec.T <= ratio.A*rec.N {
				return nil, gerr.New(gerr.ErrHintGap, "line %d: ratio violated for N=%d t=%d", lineNo, rec.N, rec.T)
			}
			maxV := ratio.B * prev.T / ratio.A
			if rec.N > maxV+1 {
				return nil, gerr.New(gerr.ErrHintGap, "line %d: gap before N=%d (verified range ends at %d)", lineNo, rec.N, maxV)
			}
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Write serializes records in order as "N:t\n" lines.
func Write(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if _, err := fmt.Fprintf(bw, "%d:%d\n", r.N, r.T); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func parseLine(line string) (Record, error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return Record{}, fmt.Errorf("malformed record %q", line)
	}
	n, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return Record{}, err
	}
	t, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return Record{}, err
	}
	return Record{N: n, T: t}, nil
}
