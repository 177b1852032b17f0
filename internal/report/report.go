// internal/report/report.go
package report

import (
	"dnascan-core/align"
	"dnascan-core/orf"
	"dnascan-core/seq"
	"dnascan-core/translate"

	"dnascan/pkg/api"
)

// Analyze runs every single-sequence computation over a validated sequence
// and assembles the v1 report envelope. The only error path is the reverse
// complement, which cannot fire on alphabet-checked input but is propagated
// rather than swallowed.
func Analyze(header, sequence string) (api.AnalyzeReportV1, error) {
	rc, err := seq.ReverseComplement(sequence)
	if err != nil {
		return api.AnalyzeReportV1{}, err
	}

	orfs := orf.Detect(sequence)
	starts, stops := seq.StartStops(sequence)

	return api.AnalyzeReportV1{
		Success:  true,
		Header:   header,
		Sequence: sequence,
		Analysis: api.AnalysisV1{
			Length:            len(sequence),
			NucleotideCounts:  toCountsV1(seq.Counts(sequence)),
			Percentages:       toPercentagesV1(seq.Percentages(sequence)),
			ReverseComplement: rc,
			Codons:            notNil(seq.Codons(sequence)),
			StartStopCodons:   toStartStopV1(starts, stops),
			ORFs:              toORFsV1(orfs),
		},
		TranslatedORFs:  toTranslatedORFsV1(translate.ORFs(orfs)),
		FullTranslation: ToTranslationV1(translate.Sequence(sequence, 0)),
	}, nil
}

// Compare aligns two validated sequences at the DNA and protein level and
// assembles the v1 comparison envelope.
func Compare(header1, seq1, header2, seq2 string) api.CompareReportV1 {
	c := align.Compare(seq1, seq2)
	return api.CompareReportV1{
		Success:    true,
		Sequence1:  api.SequenceInfoV1{Header: header1, Sequence: seq1},
		Sequence2:  api.SequenceInfoV1{Header: header2, Sequence: seq2},
		Comparison: ToComparisonV1(c),
	}
}

// ToComparisonV1 converts a core comparison to the wire schema.
func ToComparisonV1(c align.Comparison) api.ComparisonV1 {
	return api.ComparisonV1{
		Alignment: toAlignmentV1(c.Alignment),
		MutationClassification: api.ClassificationV1{
			Substitutions: c.Classification.Substitutions,
			Insertions:    c.Classification.Insertions,
			Deletions:     c.Classification.Deletions,
		},
		ProteinComparison: api.ProteinComparisonV1{
			Protein1:         c.Proteins.Protein1,
			Protein2:         c.Proteins.Protein2,
			ProteinMutations: toMutationsV1(c.Proteins.Mutations),
			Translation1:     ToTranslationV1(c.Proteins.Translation1),
			Translation2:     ToTranslationV1(c.Proteins.Translation2),
		},
	}
}

// ToTranslationV1 converts a core translation result to the wire schema.
func ToTranslationV1(r translate.Result) api.TranslationV1 {
	out := api.TranslationV1{
		Protein:  r.Protein,
		Codons:   notNil(r.Codons),
		CodonMap: make([]api.CodonCallV1, 0, len(r.Map)),
	}
	for _, c := range r.Map {
		out.CodonMap = append(out.CodonMap, api.CodonCallV1{
			Codon:     c.Codon,
			AminoAcid: string(c.AminoAcid),
			Position:  c.Position,
		})
	}
	return out
}

func toAlignmentV1(a align.Alignment) api.AlignmentV1 {
	return api.AlignmentV1{
		Seq1:          a.Seq1,
		Seq2:          a.Seq2,
		Alignment:     a.Marks,
		Mutations:     toMutationsV1(a.Mutations),
		MutationCount: len(a.Mutations),
		LengthSeq1:    a.Length1,
		LengthSeq2:    a.Length2,
	}
}

func toMutationsV1(muts []align.Mutation) []api.MutationV1 {
	out := make([]api.MutationV1, 0, len(muts))
	for _, m := range muts {
		switch v := m.(type) {
		case align.Substitution:
			out = append(out, api.MutationV1{
				Type:      api.MutationSubstitution,
				Position:  v.Position,
				Reference: string(v.Reference),
				Variant:   string(v.Variant),
			})
		case align.Insertion:
			out = append(out, api.MutationV1{
				Type:     api.MutationInsertion,
				Position: v.Position,
				Length:   v.Length,
				Sequence: v.Sequence,
			})
		case align.Deletion:
			out = append(out, api.MutationV1{
				Type:     api.MutationDeletion,
				Position: v.Position,
				Length:   v.Length,
				Sequence: v.Sequence,
			})
		}
	}
	return out
}

func toCountsV1(c seq.NucleotideCounts) api.NucleotideCountsV1 {
	return api.NucleotideCountsV1{A: c.A, T: c.T, C: c.C, G: c.G}
}

func toPercentagesV1(p seq.Composition) api.PercentagesV1 {
	return api.PercentagesV1{GCPercent: p.GCPercent, ATPercent: p.ATPercent}
}

func toStartStopV1(starts []int, stops []seq.StopPosition) api.StartStopV1 {
	out := api.StartStopV1{
		StartCodons: notNil(starts),
		StopCodons:  make([]api.StopCodonV1, 0, len(stops)),
	}
	for _, s := range stops {
		out.StopCodons = append(out.StopCodons, api.StopCodonV1{Position: s.Position, Codon: s.Codon})
	}
	return out
}

func toORFsV1(orfs []orf.ORF) []api.ORFV1 {
	out := make([]api.ORFV1, 0, len(orfs))
	for _, o := range orfs {
		out = append(out, api.ORFV1{
			Frame:    o.Frame,
			Start:    o.Start,
			End:      o.End,
			Length:   o.Length,
			Sequence: o.Sequence,
		})
	}
	return out
}

func toTranslatedORFsV1(list []translate.ORFTranslation) []api.TranslatedORFV1 {
	out := make([]api.TranslatedORFV1, 0, len(list))
	for _, t := range list {
		out = append(out, api.TranslatedORFV1{
			Frame:       t.ORF.Frame,
			Start:       t.ORF.Start,
			End:         t.ORF.End,
			Length:      t.ORF.Length,
			Sequence:    t.ORF.Sequence,
			Translation: ToTranslationV1(t.Translation),
		})
	}
	return out
}

// notNil keeps empty slices as [] rather than null on the wire.
func notNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
