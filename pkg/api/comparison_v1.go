// pkg/api/comparison_v1.go
package api

// Wire schema v1 for two-sequence comparison.

// Mutation type tags.
const (
	MutationSubstitution = "substitution"
	MutationInsertion    = "insertion"
	MutationDeletion     = "deletion"
)

// MutationV1 is the tagged mutation record. Substitutions carry
// reference/variant; insertions and deletions carry length/sequence.
type MutationV1 struct {
	Type      string `json:"type"`
	Position  int    `json:"position"`
	Reference string `json:"reference,omitempty"`
	Variant   string `json:"variant,omitempty"`
	Length    int    `json:"length,omitempty"`
	Sequence  string `json:"sequence,omitempty"`
}

// AlignmentV1 is the naive positional alignment of two sequences. Alignment
// holds one mark per position of the longer input: '|' match, '*' mismatch,
// ' ' gap.
type AlignmentV1 struct {
	Seq1          string       `json:"seq1"`
	Seq2          string       `json:"seq2"`
	Alignment     string       `json:"alignment"`
	Mutations     []MutationV1 `json:"mutations"`
	MutationCount int          `json:"mutation_count"`
	LengthSeq1    int          `json:"length_seq1"`
	LengthSeq2    int          `json:"length_seq2"`
}

// ClassificationV1 counts mutations by kind.
type ClassificationV1 struct {
	Substitutions int `json:"substitutions"`
	Insertions    int `json:"insertions"`
	Deletions     int `json:"deletions"`
}

// ProteinComparisonV1 is the protein-level diff plus both translations.
type ProteinComparisonV1 struct {
	Protein1         string        `json:"protein1"`
	Protein2         string        `json:"protein2"`
	ProteinMutations []MutationV1  `json:"protein_mutations"`
	Translation1     TranslationV1 `json:"translation1"`
	Translation2     TranslationV1 `json:"translation2"`
}

// ComparisonV1 is the combined comparison result.
type ComparisonV1 struct {
	Alignment              AlignmentV1         `json:"alignment"`
	MutationClassification ClassificationV1    `json:"mutation_classification"`
	ProteinComparison      ProteinComparisonV1 `json:"protein_comparison"`
}

// SequenceInfoV1 echoes a parsed FASTA input.
type SequenceInfoV1 struct {
	Header   string `json:"header"`
	Sequence string `json:"sequence"`
}

// CompareReportV1 is the full /compare response envelope.
type CompareReportV1 struct {
	Success    bool           `json:"success"`
	Sequence1  SequenceInfoV1 `json:"sequence1"`
	Sequence2  SequenceInfoV1 `json:"sequence2"`
	Comparison ComparisonV1   `json:"comparison"`
}
