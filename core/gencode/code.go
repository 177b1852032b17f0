// core/gencode/code.go
package gencode

import "strings"

// Markers returned by Translate for stop codons and unmapped input.
const (
	Stop    byte = '*'
	Unknown byte = '?'
)

// Standard is the standard genetic code (NCBI translation table 1),
// codon → single-letter amino acid, '*' for stop.
var Standard = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Translate maps a codon to its amino acid. Anything that is not an exact
// three-symbol table entry yields Unknown rather than an error, so callers
// can feed trailing fragments without a failure path.
func Translate(codon string) byte {
	if len(codon) != 3 {
		return Unknown
	}
	if aa, ok := Standard[strings.ToUpper(codon)]; ok {
		return aa
	}
	return Unknown
}
