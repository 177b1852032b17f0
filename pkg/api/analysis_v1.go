// pkg/api/analysis_v1.go
package api

// Wire schema v1 for single-sequence analysis. Keep fields, names, and types
// stable. Add new fields only with ",omitempty".

// NucleotideCountsV1 is the per-base tally.
type NucleotideCountsV1 struct {
	A int `json:"A"`
	T int `json:"T"`
	C int `json:"C"`
	G int `json:"G"`
}

// PercentagesV1 carries GC/AT content rounded to two decimals.
type PercentagesV1 struct {
	GCPercent float64 `json:"gc_percent"`
	ATPercent float64 `json:"at_percent"`
}

// StopCodonV1 is a stop codon at an offset of the sequence.
type StopCodonV1 struct {
	Position int    `json:"position"`
	Codon    string `json:"codon"`
}

// StartStopV1 lists start/stop codon positions over the whole sequence.
type StartStopV1 struct {
	StartCodons []int         `json:"start_codons"`
	StopCodons  []StopCodonV1 `json:"stop_codons"`
}

// ORFV1 is an open reading frame span.
type ORFV1 struct {
	Frame    int    `json:"frame"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Length   int    `json:"length"`
	Sequence string `json:"sequence"`
}

// CodonCallV1 is one entry of a translation's codon map.
type CodonCallV1 struct {
	Codon     string `json:"codon"`
	AminoAcid string `json:"amino_acid"`
	Position  int    `json:"position"`
}

// TranslationV1 is a translation result.
type TranslationV1 struct {
	Protein  string        `json:"protein"`
	Codons   []string      `json:"codons"`
	CodonMap []CodonCallV1 `json:"codon_map"`
}

// TranslatedORFV1 is an ORF with the translation of its own sequence.
type TranslatedORFV1 struct {
	Frame       int           `json:"frame"`
	Start       int           `json:"start"`
	End         int           `json:"end"`
	Length      int           `json:"length"`
	Sequence    string        `json:"sequence"`
	Translation TranslationV1 `json:"translation"`
}

// AnalysisV1 aggregates every single-sequence computation.
type AnalysisV1 struct {
	Length            int                `json:"length"`
	NucleotideCounts  NucleotideCountsV1 `json:"nucleotide_counts"`
	Percentages       PercentagesV1      `json:"percentages"`
	ReverseComplement string             `json:"reverse_complement"`
	Codons            []string           `json:"codons"`
	StartStopCodons   StartStopV1        `json:"start_stop_codons"`
	ORFs              []ORFV1            `json:"orfs"`
}

// AnalyzeReportV1 is the full /analyze response envelope.
type AnalyzeReportV1 struct {
	Success         bool              `json:"success"`
	Header          string            `json:"header"`
	Sequence        string            `json:"sequence"`
	Analysis        AnalysisV1        `json:"analysis"`
	TranslatedORFs  []TranslatedORFV1 `json:"translated_orfs"`
	FullTranslation TranslationV1     `json:"full_translation"`
}
