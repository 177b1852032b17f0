// core/seq/revcomp.go
package seq

import (
	"errors"
	"fmt"
)

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// ErrInvalidSymbol reports a base outside the A/T/C/G alphabet.
var ErrInvalidSymbol = errors.New("invalid nucleotide")

// ReverseComplement maps A↔T and C↔G then reverses the order. Unlike Counts
// it does not tolerate unknown symbols: the first base outside the alphabet
// fails the whole call.
func ReverseComplement(s string) (string, error) {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := s[n-1-i]
		c := complement[b]
		if c == 0 {
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, rune(b), n-1-i)
		}
		out[i] = c
	}
	return string(out), nil
}
