package search

import (
	"bytes"
	"context"
	"testing"

	"github.com/bfix/egsbound/config"
	"github.com/bfix/egsbound/hint"
)

// TestBatchProducesMonotoneContiguousHints stands in for the documented
// N in [10^6, 10^12], ratio 1/3 batch scenario at a unit-test-friendly
// scale; the literal range is an integration-only check, since driving
// Bisect a trillion times is well beyond what a unit test should do.
func TestBatchProducesMonotoneContiguousHints(t *testing.T) {
	ratio := Ratio{A: 1, B: 3}
	tuning := config.Default()
	var buf bytes.Buffer

	if err := Batch(context.Background(), 1000, 1050, ratio, tuning, false, &buf); err != nil {
		t.Fatalf("Batch: %v", err)
	}

	recs, err := hint.Read(bytes.NewReader(buf.Bytes()), hint.Ratio(ratio))
	if err != nil {
		t.Fatalf("the written hint file failed its own monotonicity/gap check: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected at least one hint record")
	}
	if recs[0].N != 1000 || recs[len(recs)-1].N != 1050 {
		t.Fatalf("expected records spanning [1000,1050], got [%d,%d]", recs[0].N, recs[len(recs)-1].N)
	}
}
