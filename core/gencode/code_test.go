// core/gencode/code_test.go
package gencode

import "testing"

func TestTranslateCodons(t *testing.T) {
	cases := []struct {
		codon string
		want  byte
	}{
		{"ATG", 'M'},
		{"AAA", 'K'},
		{"TGG", 'W'},
		{"GGC", 'G'},
		{"TAA", Stop},
		{"TAG", Stop},
		{"TGA", Stop},
		{"atg", 'M'}, // case-folded
	}
	for _, c := range cases {
		if got := Translate(c.codon); got != c.want {
			t.Errorf("Translate(%q) = %c, want %c", c.codon, got, c.want)
		}
	}
}

func TestTranslateUnknown(t *testing.T) {
	for _, codon := range []string{"", "AT", "ATGA", "XYZ", "AUG"} {
		if got := Translate(codon); got != Unknown {
			t.Errorf("Translate(%q) = %c, want %c", codon, got, Unknown)
		}
	}
}

func TestTableComplete(t *testing.T) {
	if len(Standard) != 64 {
		t.Fatalf("table has %d codons, want 64", len(Standard))
	}
	stops := 0
	for codon, aa := range Standard {
		if len(codon) != 3 {
			t.Errorf("bad codon key %q", codon)
		}
		if aa == Stop {
			stops++
		}
	}
	if stops != 3 {
		t.Errorf("table has %d stop codons, want 3", stops)
	}
}
