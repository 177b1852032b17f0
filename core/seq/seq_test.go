// core/seq/seq_test.go
package seq

import (
	"errors"
	"strings"
	"testing"
)

func TestCounts(t *testing.T) {
	got := Counts("ATGAAATAG")
	want := NucleotideCounts{A: 4, T: 2, C: 0, G: 2}
	if got != want {
		t.Errorf("Counts(ATGAAATAG) = %+v, want %+v", got, want)
	}
}

func TestCountsIgnoresUnknown(t *testing.T) {
	got := Counts("ANTX")
	want := NucleotideCounts{A: 1, T: 1}
	if got != want {
		t.Errorf("Counts(ANTX) = %+v, want %+v", got, want)
	}
}

func TestCountsLowercase(t *testing.T) {
	if got := Counts("atcg"); got != (NucleotideCounts{A: 1, T: 1, C: 1, G: 1}) {
		t.Errorf("Counts(atcg) = %+v", got)
	}
}

func TestPercentages(t *testing.T) {
	cases := []struct {
		in     string
		gc, at float64
	}{
		{"GGCC", 100, 0},
		{"AATT", 0, 100},
		{"ATGC", 50, 50},
		{"ATG", 33.33, 66.67},
		{"", 0, 0},
	}
	for _, c := range cases {
		got := Percentages(c.in)
		if got.GCPercent != c.gc || got.ATPercent != c.at {
			t.Errorf("Percentages(%q) = %+v, want gc=%v at=%v", c.in, got, c.gc, c.at)
		}
	}
}

func TestPercentagesSumTo100(t *testing.T) {
	for _, s := range []string{"A", "ATGAAATAG", "GATTACA", "CCCCGGGGA"} {
		p := Percentages(s)
		sum := p.GCPercent + p.ATPercent
		if sum < 99.99 || sum > 100.01 {
			t.Errorf("Percentages(%q): gc+at = %v, want ~100", s, sum)
		}
	}
}

func TestReverseComplement(t *testing.T) {
	got, err := ReverseComplement("ATGAAATAG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "CTATTTCAT" {
		t.Errorf("ReverseComplement(ATGAAATAG) = %q, want CTATTTCAT", got)
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	for _, s := range []string{"", "A", "ATGC", "GATTACA", "ATGAAATAG"} {
		rc, err := ReverseComplement(s)
		if err != nil {
			t.Fatalf("ReverseComplement(%q): %v", s, err)
		}
		if len(rc) != len(s) {
			t.Errorf("len(ReverseComplement(%q)) = %d, want %d", s, len(rc), len(s))
		}
		back, err := ReverseComplement(rc)
		if err != nil {
			t.Fatalf("ReverseComplement(%q): %v", rc, err)
		}
		if back != s {
			t.Errorf("double complement of %q = %q", s, back)
		}
	}
}

func TestReverseComplementInvalid(t *testing.T) {
	_, err := ReverseComplement("ATNG")
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("want ErrInvalidSymbol, got %v", err)
	}
	if !strings.Contains(err.Error(), "position 2") {
		t.Errorf("error should name the offending position: %v", err)
	}
}

func TestCodons(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"AT", nil},
		{"ATG", []string{"ATG"}},
		{"ATGAAATAG", []string{"ATG", "AAA", "TAG"}},
		{"ATGAAATAGC", []string{"ATG", "AAA", "TAG"}}, // remainder dropped
	}
	for _, c := range cases {
		got := Codons(c.in)
		if len(got) != len(c.want) {
			t.Errorf("Codons(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		joined := strings.Join(got, "")
		if joined != c.in[:len(c.in)/3*3] {
			t.Errorf("Codons(%q) concatenation = %q", c.in, joined)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("Codons(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestStartStops(t *testing.T) {
	// ATG at 0; TGA at 1 (overlapping the start) and TAG at 6.
	starts, stops := StartStops("ATGAAATAG")
	if len(starts) != 1 || starts[0] != 0 {
		t.Errorf("starts = %v, want [0]", starts)
	}
	if len(stops) != 2 {
		t.Fatalf("stops = %v, want 2 entries", stops)
	}
	if stops[0] != (StopPosition{Position: 1, Codon: "TGA"}) {
		t.Errorf("stops[0] = %+v", stops[0])
	}
	if stops[1] != (StopPosition{Position: 6, Codon: "TAG"}) {
		t.Errorf("stops[1] = %+v", stops[1])
	}
}

func TestStartStopsEmpty(t *testing.T) {
	starts, stops := StartStops("")
	if len(starts) != 0 || len(stops) != 0 {
		t.Errorf("StartStops(\"\") = %v, %v", starts, stops)
	}
}
