// core/seq/counts.go
package seq

import (
	"math"
	"strings"
)

// NucleotideCounts holds per-base occurrence counts.
type NucleotideCounts struct {
	A int
	T int
	C int
	G int
}

// Composition holds GC and AT content as percentages rounded to two
// decimals. Both are zero for an empty sequence.
type Composition struct {
	GCPercent float64
	ATPercent float64
}

// Counts tallies A/T/C/G occurrences in s. Symbols outside the alphabet are
// ignored; validated input never contains any.
func Counts(s string) NucleotideCounts {
	s = strings.ToUpper(s)
	var c NucleotideCounts
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			c.A++
		case 'T':
			c.T++
		case 'C':
			c.C++
		case 'G':
			c.G++
		}
	}
	return c
}

// Percentages derives GC/AT content from s.
func Percentages(s string) Composition {
	total := len(s)
	if total == 0 {
		return Composition{}
	}
	c := Counts(s)
	return Composition{
		GCPercent: round2(float64(c.G+c.C) / float64(total) * 100),
		ATPercent: round2(float64(c.A+c.T) / float64(total) * 100),
	}
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
