package hint

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	recs := []Record{{N: 100, T: 34}, {N: 101, T: 35}, {N: 200, T: 67}}
	var buf bytes.Buffer
	if err := Write(&buf, recs); err != nil {
		t.Fatal(err)
	}
	ratio := Ratio{A: 1, B: 3}
	got, err := Read(&buf, ratio)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != len(recs) {
		t.Fatalf("got %d records, want %d", len(got), len(recs))
	}
	for i, r := range recs {
		if got[i] != r {
			t.Errorf("record %d = %+v, want %+v", i, got[i], r)
		}
	}
}

func TestReadRejectsNonIncreasingN(t *testing.T) {
	in := "100:34\n100:35\n"
	_, err := Read(strings.NewReader(in), Ratio{A: 1, B: 3})
	if err == nil {
		t.Fatal("expected an error for non-increasing N")
	}
}

func TestReadRejectsGap(t *testing.T) {
	// b*t/a for the first record is far below the next N, so there is
	// a gap in proved coverage.
	in := "100:34\n10000:3334\n"
	_, err := Read(strings.NewReader(in), Ratio{A: 1, B: 3})
	if err == nil {
		t.Fatal("expected an error for a gap between records")
	}
}

func TestReadRejectsRatioViolation(t *testing.T) {
	// t=10 fails b*t > a*N for N=100, a/b=1/3 (3*10=30, 1*100=100).
	in := "50:20\n100:10\n"
	_, err := Read(strings.NewReader(in), Ratio{A: 1, B: 3})
	if err == nil {
		t.Fatal("expected an error for a ratio violation")
	}
}

func TestReadAcceptsContiguousBoundary(t *testing.T) {
	// Second record's N sits exactly at floor(b*t/a)+1: allowed, a
	// contiguous boundary is not a gap.
	in := "90:31\n94:32\n" // floor(3*31/1)=93, 94 = 93+1
	got, err := Read(strings.NewReader(in), Ratio{A: 1, B: 3})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
}

func TestReadIgnoresBlankLines(t *testing.T) {
	in := "100:34\n\n101:35\n"
	got, err := Read(strings.NewReader(in), Ratio{A: 1, B: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
}

func TestReadRejectsMalformedLine(t *testing.T) {
	_, err := Read(strings.NewReader("not-a-record\n"), Ratio{A: 1, B: 3})
	if err == nil {
		t.Fatal("expected an error for a malformed line")
	}
}
