// core/orf/orf.go
package orf

// ORF is an open reading frame: an ATG start codon through the end of the
// first in-frame stop codon. End is one past the stop codon's last symbol,
// so Length = End - Start is always a multiple of 3 and at least 6.
type ORF struct {
	Frame    int
	Start    int
	End      int
	Length   int
	Sequence string
}

var stopCodons = map[string]bool{"TAA": true, "TAG": true, "TGA": true}

// Detect scans the three reading frames of s for ORFs. Within a frame the
// scan is greedy and non-overlapping: after an ORF is emitted the cursor
// resumes at its end, and a start with no downstream in-frame stop is skipped
// with the cursor resuming three symbols past it. Frames are independent, so
// ORFs from different frames may overlap. Output order is all frame-0 ORFs in
// scan order, then frame 1, then frame 2.
func Detect(s string) []ORF {
	var orfs []ORF
	for frame := 0; frame < 3; frame++ {
		i := frame
		for i+3 <= len(s) {
			if s[i:i+3] != "ATG" {
				i += 3
				continue
			}
			end := -1
			for j := i + 3; j+3 <= len(s); j += 3 {
				if stopCodons[s[j:j+3]] {
					end = j + 3
					break
				}
			}
			if end < 0 {
				i += 3
				continue
			}
			orfs = append(orfs, ORF{
				Frame:    frame,
				Start:    i,
				End:      end,
				Length:   end - i,
				Sequence: s[i:end],
			})
			i = end
		}
	}
	return orfs
}
