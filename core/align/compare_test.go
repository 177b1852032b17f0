// core/align/compare_test.go
package align

import "testing"

func TestCompareProteinsSubstitution(t *testing.T) {
	// ATG AAA TAG → MK*  vs  ATG GAA TAG → ME*
	pc := CompareProteins("ATGAAATAG", "ATGGAATAG")
	if pc.Protein1 != "MK*" || pc.Protein2 != "ME*" {
		t.Fatalf("proteins = %q, %q", pc.Protein1, pc.Protein2)
	}
	if len(pc.Mutations) != 1 {
		t.Fatalf("mutations = %v, want one", pc.Mutations)
	}
	sub, ok := pc.Mutations[0].(Substitution)
	if !ok {
		t.Fatalf("mutation = %T, want Substitution", pc.Mutations[0])
	}
	if sub != (Substitution{Position: 1, Reference: 'K', Variant: 'E'}) {
		t.Errorf("substitution = %+v", sub)
	}
}

func TestCompareProteinsTrailingIndel(t *testing.T) {
	// MK vs MKV: protein-level insertion at position 2.
	pc := CompareProteins("ATGAAA", "ATGAAAGTT")
	if pc.Protein1 != "MK" || pc.Protein2 != "MKV" {
		t.Fatalf("proteins = %q, %q", pc.Protein1, pc.Protein2)
	}
	if len(pc.Mutations) != 1 {
		t.Fatalf("mutations = %v", pc.Mutations)
	}
	ins, ok := pc.Mutations[0].(Insertion)
	if !ok {
		t.Fatalf("mutation = %T, want Insertion", pc.Mutations[0])
	}
	if ins != (Insertion{Position: 2, Length: 1, Sequence: "V"}) {
		t.Errorf("insertion = %+v", ins)
	}
}

func TestCompareProteinsIndelAfterSubstitutions(t *testing.T) {
	// MK vs MEV: one substitution then the trailing indel.
	pc := CompareProteins("ATGAAA", "ATGGAAGTT")
	if len(pc.Mutations) != 2 {
		t.Fatalf("mutations = %v, want two", pc.Mutations)
	}
	if _, ok := pc.Mutations[0].(Substitution); !ok {
		t.Errorf("first mutation = %T, want Substitution", pc.Mutations[0])
	}
	if _, ok := pc.Mutations[1].(Insertion); !ok {
		t.Errorf("second mutation = %T, want Insertion", pc.Mutations[1])
	}
}

func TestCompareProteinsStopTruncates(t *testing.T) {
	// An early stop in seq2 shortens its protein; the DNA tails differ but
	// translation halted before them.
	pc := CompareProteins("ATGAAAGGG", "ATGTAAGGG")
	if pc.Protein1 != "MKG" || pc.Protein2 != "M*" {
		t.Fatalf("proteins = %q, %q", pc.Protein1, pc.Protein2)
	}
	// Position 1: K vs *, then deletion of the leftover G.
	if len(pc.Mutations) != 2 {
		t.Fatalf("mutations = %v", pc.Mutations)
	}
	del, ok := pc.Mutations[1].(Deletion)
	if !ok {
		t.Fatalf("second mutation = %T, want Deletion", pc.Mutations[1])
	}
	if del != (Deletion{Position: 2, Length: 1, Sequence: "G"}) {
		t.Errorf("deletion = %+v", del)
	}
}

func TestCompare(t *testing.T) {
	c := Compare("ATGAAATAG", "ATGGAATAG")
	if c.Classification != (Classification{Substitutions: 1}) {
		t.Errorf("classification = %+v", c.Classification)
	}
	if len(c.Alignment.Mutations) != 1 {
		t.Errorf("alignment mutations = %v", c.Alignment.Mutations)
	}
	if c.Proteins.Protein1 != "MK*" || c.Proteins.Protein2 != "ME*" {
		t.Errorf("proteins = %q, %q", c.Proteins.Protein1, c.Proteins.Protein2)
	}
}

func TestCompareIdentical(t *testing.T) {
	c := Compare("ATGAAATAG", "ATGAAATAG")
	if c.Classification != (Classification{}) {
		t.Errorf("classification = %+v", c.Classification)
	}
	if len(c.Proteins.Mutations) != 0 {
		t.Errorf("protein mutations = %v", c.Proteins.Mutations)
	}
}
