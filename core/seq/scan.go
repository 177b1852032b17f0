// core/seq/scan.go
package seq

// StopPosition is a stop codon found at an offset of the sequence.
type StopPosition struct {
	Position int
	Codon    string
}

var stopCodons = map[string]bool{"TAA": true, "TAG": true, "TGA": true}

// StartStops lists every ATG offset and every stop-codon offset in s. The
// scan slides one symbol at a time; it is not frame-restricted.
func StartStops(s string) (starts []int, stops []StopPosition) {
	for i := 0; i+3 <= len(s); i++ {
		codon := s[i : i+3]
		switch {
		case codon == "ATG":
			starts = append(starts, i)
		case stopCodons[codon]:
			stops = append(stops, StopPosition{Position: i, Codon: codon})
		}
	}
	return starts, stops
}
