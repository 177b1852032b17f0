// core/translate/translate.go
package translate

import (
	"dnascan-core/gencode"
	"dnascan-core/orf"
)

// CodonCall records one translated codon. Position is relative to the
// translation's start offset.
type CodonCall struct {
	Codon     string
	AminoAcid byte
	Position  int
}

// Result is the outcome of translating a nucleotide sequence. Protein
// includes the terminal stop symbol when one was reached.
type Result struct {
	Protein string
	Codons  []string
	Map     []CodonCall
}

// ORFTranslation pairs an ORF with the translation of its own sequence.
type ORFTranslation struct {
	ORF         orf.ORF
	Translation Result
}

// Codon translates a single codon via the standard genetic code. Malformed
// input yields gencode.Unknown, never an error.
func Codon(c string) byte { return gencode.Translate(c) }

// Sequence translates s from start in steps of three, stopping immediately
// after the first stop codon (which is included in the output). A trailing
// partial codon is dropped without producing an Unknown entry. A start at or
// past the end of s yields an empty Result.
func Sequence(s string, start int) Result {
	var r Result
	if start < 0 {
		start = 0
	}
	if start >= len(s) {
		return r
	}
	s = s[start:]
	protein := make([]byte, 0, len(s)/3)
	for i := 0; i+3 <= len(s); i += 3 {
		codon := s[i : i+3]
		aa := gencode.Translate(codon)
		protein = append(protein, aa)
		r.Codons = append(r.Codons, codon)
		r.Map = append(r.Map, CodonCall{Codon: codon, AminoAcid: aa, Position: i})
		if aa == gencode.Stop {
			break
		}
	}
	r.Protein = string(protein)
	return r
}

// ORFs translates each ORF's sequence from offset 0, preserving input order.
func ORFs(list []orf.ORF) []ORFTranslation {
	out := make([]ORFTranslation, 0, len(list))
	for _, o := range list {
		out = append(out, ORFTranslation{ORF: o, Translation: Sequence(o.Sequence, 0)})
	}
	return out
}
