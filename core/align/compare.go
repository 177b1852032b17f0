// core/align/compare.go
package align

import "dnascan-core/translate"

// Classification counts mutations by kind.
type Classification struct {
	Substitutions int
	Insertions    int
	Deletions     int
}

// ProteinComparison is the protein-level diff of two sequences translated
// from offset 0.
type ProteinComparison struct {
	Protein1     string
	Protein2     string
	Mutations    []Mutation
	Translation1 translate.Result
	Translation2 translate.Result
}

// Comparison is the full DNA- plus protein-level comparison of two sequences.
type Comparison struct {
	Alignment      Alignment
	Classification Classification
	Proteins       ProteinComparison
}

// Classify tallies mutations by kind.
func Classify(muts []Mutation) Classification {
	var c Classification
	for _, m := range muts {
		switch m.(type) {
		case Substitution:
			c.Substitutions++
		case Insertion:
			c.Insertions++
		case Deletion:
			c.Deletions++
		}
	}
	return c
}

// CompareProteins translates both sequences fully (each to its own first stop
// or end) and diffs the proteins under the same naive policy as Align:
// substitutions over the shared prefix, any length difference as one trailing
// indel. Unlike Align, the indel is appended after the substitutions.
func CompareProteins(seq1, seq2 string) ProteinComparison {
	t1 := translate.Sequence(seq1, 0)
	t2 := translate.Sequence(seq2, 0)
	pc := ProteinComparison{
		Protein1:     t1.Protein,
		Protein2:     t2.Protein,
		Translation1: t1,
		Translation2: t2,
	}
	p1, p2 := t1.Protein, t2.Protein
	for i := 0; i < min(len(p1), len(p2)); i++ {
		if p1[i] != p2[i] {
			pc.Mutations = append(pc.Mutations, Substitution{
				Position:  i,
				Reference: p1[i],
				Variant:   p2[i],
			})
		}
	}
	switch {
	case len(p1) < len(p2):
		pc.Mutations = append(pc.Mutations, Insertion{
			Position: len(p1),
			Length:   len(p2) - len(p1),
			Sequence: p2[len(p1):],
		})
	case len(p1) > len(p2):
		pc.Mutations = append(pc.Mutations, Deletion{
			Position: len(p2),
			Length:   len(p1) - len(p2),
			Sequence: p1[len(p2):],
		})
	}
	return pc
}

// Compare aligns the two sequences at the DNA level, classifies the detected
// mutations, and attaches the protein-level comparison.
func Compare(seq1, seq2 string) Comparison {
	a := Align(seq1, seq2)
	return Comparison{
		Alignment:      a,
		Classification: Classify(a.Mutations),
		Proteins:       CompareProteins(seq1, seq2),
	}
}
