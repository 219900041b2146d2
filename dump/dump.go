// Package dump reads and writes the purely diagnostic "n,m,p,q\n" line
// format for a factorization log. It is not used by any proof step; it
// exists so a run can be inspected without re-running the engine. A
// dump does not carry enough to be replayed through verify.
package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bfix/egsbound/engine"
)

// Write serializes a factorization log as one "n,m,p,q" line per
// descriptor. The descriptor's own factorization (F) is not
// round-tripped; a reader must re-derive it from M via the smooth
// table, which is why dump is diagnostic only, not a verification input.
func Write(w io.Writer, log []engine.FactorDescriptor) error {
	bw := bufio.NewWriter(w)
	for _, d := range log {
		if _, err := fmt.Fprintf(bw, "%d,%d,%d,%d\n", d.N, d.M, d.P, d.Q); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Line is one parsed dump record.
type Line struct {
	N, M, P, Q uint64
}

// Read parses every line without attempting to reconstruct F or Kind;
// callers needing a full replay must keep the original log in memory.
func Read(r io.Reader) ([]Line, error) {
	sc := bufio.NewScanner(r)
	var out []Line
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("dump: malformed line %q", line)
		}
		var vals [4]uint64
		for i, p := range parts {
			v, err := strconv.ParseUint(p, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("dump: %v", err)
			}
			vals[i] = v
		}
		out = append(out, Line{N: vals[0], M: vals[1], P: vals[2], Q: vals[3]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
