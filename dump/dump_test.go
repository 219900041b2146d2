package dump

import (
	"bytes"
	"testing"

	"github.com/bfix/egsbound/config"
	"github.com/bfix/egsbound/engine"
)

func TestWriteReadRoundTrip(t *testing.T) {
	N := uint64(2000)
	tt := uint64(700)
	tb := engine.NewTables(N, tt)
	r, err := engine.Run(N, tt, config.Default(), tb, false, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Log) == 0 {
		t.Skip("no descriptors logged")
	}

	var buf bytes.Buffer
	if err := Write(&buf, r.Log); err != nil {
		t.Fatal(err)
	}
	lines, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != len(r.Log) {
		t.Fatalf("got %d lines, want %d", len(lines), len(r.Log))
	}
	for i, d := range r.Log {
		l := lines[i]
		if l.N != d.N || l.M != d.M || l.P != d.P || l.Q != d.Q {
			t.Errorf("line %d = %+v, want {%d %d %d %d}", i, l, d.N, d.M, d.P, d.Q)
		}
	}
}

func TestReadRejectsMalformedLine(t *testing.T) {
	_, err := Read(bytes.NewBufferString("1,2,3\n"))
	if err == nil {
		t.Fatal("expected an error for a malformed line (wrong field count)")
	}
}
