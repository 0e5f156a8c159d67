package prefixcode

import (
	"io"
	"strings"
	"testing"
)

func makeLectureSource(t testing.TB) *Source {
	t.Helper()
	src, err := SourceFromString("WXYZ", []float64{0.4, 0.2, 0.3, 0.1}, false)
	if err != nil {
		t.Fatalf("SourceFromString failed: %v", err)
	}
	return src
}

func makeCountsSource(t testing.TB) *Source {
	t.Helper()
	src, err := SourceFromString("ABCDE", []float64{3, 2, 1, 1, 1}, true)
	if err != nil {
		t.Fatalf("SourceFromString failed: %v", err)
	}
	return src
}

// makeFrequencySource is the classic six-symbol example from CLRS.
func makeFrequencySource(t testing.TB) *Source {
	t.Helper()
	src, err := SourceFromString("abcdef", []float64{5, 9, 12, 13, 16, 45}, true)
	if err != nil {
		t.Fatalf("SourceFromString failed: %v", err)
	}
	return src
}

type dumper interface {
	Dump(w io.Writer) (int64, error)
}

func dumpString(t testing.TB, d dumper) string {
	t.Helper()
	var buf strings.Builder
	if _, err := d.Dump(&buf); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	return buf.String()
}
