// core/align/align.go
package align

// Alignment mark symbols: one per position of the longer sequence.
const (
	MarkMatch    = '|'
	MarkMismatch = '*'
	MarkGap      = ' '
)

// Mutation is one of Substitution, Insertion, or Deletion.
type Mutation interface {
	mutation()
}

// Substitution is a single-symbol difference at a shared position.
type Substitution struct {
	Position  int
	Reference byte
	Variant   byte
}

// Insertion is extra variant sequence past the end of the reference.
type Insertion struct {
	Position int
	Length   int
	Sequence string
}

// Deletion is reference sequence missing from the end of the variant.
type Deletion struct {
	Position int
	Length   int
	Sequence string
}

func (Substitution) mutation() {}
func (Insertion) mutation()    {}
func (Deletion) mutation()     {}

// Alignment is the result of a naive positional comparison of two sequences.
// Marks has one symbol per position of the longer input.
type Alignment struct {
	Seq1      string
	Seq2      string
	Marks     string
	Mutations []Mutation
	Length1   int
	Length2   int
}

// Align compares reference and variant position by position. Equal lengths
// yield only substitutions. A length difference is reported as a single
// trailing indel covering the longer sequence's tail, recorded before the
// substitution scan over the shared prefix; no attempt is made to locate
// interior indels. Kept for compatibility with existing consumers.
func Align(reference, variant string) Alignment {
	len1, len2 := len(reference), len(variant)
	a := Alignment{Seq1: reference, Seq2: variant, Length1: len1, Length2: len2}

	switch {
	case len1 < len2:
		a.Mutations = append(a.Mutations, Insertion{
			Position: len1,
			Length:   len2 - len1,
			Sequence: variant[len1:],
		})
	case len1 > len2:
		a.Mutations = append(a.Mutations, Deletion{
			Position: len2,
			Length:   len1 - len2,
			Sequence: reference[len2:],
		})
	}

	longest := max(len1, len2)
	marks := make([]byte, 0, longest)
	for i := 0; i < min(len1, len2); i++ {
		if reference[i] == variant[i] {
			marks = append(marks, MarkMatch)
			continue
		}
		marks = append(marks, MarkMismatch)
		a.Mutations = append(a.Mutations, Substitution{
			Position:  i,
			Reference: reference[i],
			Variant:   variant[i],
		})
	}
	for len(marks) < longest {
		marks = append(marks, MarkGap)
	}
	a.Marks = string(marks)
	return a
}
