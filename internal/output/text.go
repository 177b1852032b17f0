// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"dnascan/pkg/api"
)

// WriteAnalysisText prints a human-readable analysis report.
func WriteAnalysisText(w io.Writer, rep api.AnalyzeReportV1) error {
	a := rep.Analysis
	if _, err := fmt.Fprintf(w, "# %s\n", rep.Header); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w,
		"length\t%d\ncounts\tA=%d T=%d C=%d G=%d\ngc%%\t%.2f\nat%%\t%.2f\nrevcomp\t%s\n",
		a.Length,
		a.NucleotideCounts.A, a.NucleotideCounts.T, a.NucleotideCounts.C, a.NucleotideCounts.G,
		a.Percentages.GCPercent, a.Percentages.ATPercent,
		a.ReverseComplement,
	)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "protein\t%s\n", rep.FullTranslation.Protein); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "orfs\t%d\n", len(a.ORFs)); err != nil {
		return err
	}
	for i, o := range rep.TranslatedORFs {
		_, err := fmt.Fprintf(w, "orf%d\tframe=%d\t%d..%d\tlen=%d\t%s\t%s\n",
			i+1, o.Frame, o.Start, o.End, o.Length, o.Sequence, o.Translation.Protein)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteComparisonText prints the two sequences with the mark line between
// them, then one line per mutation at the DNA and protein level.
func WriteComparisonText(w io.Writer, rep api.CompareReportV1) error {
	c := rep.Comparison
	_, err := fmt.Fprintf(w, "# %s vs %s\n%s\n%s\n%s\n",
		rep.Sequence1.Header, rep.Sequence2.Header,
		c.Alignment.Seq1, c.Alignment.Alignment, c.Alignment.Seq2)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "mutations\t%d (sub=%d ins=%d del=%d)\n",
		c.Alignment.MutationCount,
		c.MutationClassification.Substitutions,
		c.MutationClassification.Insertions,
		c.MutationClassification.Deletions)
	if err != nil {
		return err
	}
	for _, m := range c.Alignment.Mutations {
		if err := writeMutationText(w, m); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "protein1\t%s\nprotein2\t%s\n",
		c.ProteinComparison.Protein1, c.ProteinComparison.Protein2)
	if err != nil {
		return err
	}
	for _, m := range c.ProteinComparison.ProteinMutations {
		if err := writeMutationText(w, m); err != nil {
			return err
		}
	}
	return nil
}

func writeMutationText(w io.Writer, m api.MutationV1) error {
	var err error
	switch m.Type {
	case api.MutationSubstitution:
		_, err = fmt.Fprintf(w, "%s\t%d\t%s>%s\n", m.Type, m.Position, m.Reference, m.Variant)
	default:
		_, err = fmt.Fprintf(w, "%s\t%d\tlen=%d\t%s\n", m.Type, m.Position, m.Length, m.Sequence)
	}
	return err
}
