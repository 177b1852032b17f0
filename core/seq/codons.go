// core/seq/codons.go
package seq

// Codons partitions s into consecutive non-overlapping triplets starting at
// offset 0. A trailing remainder shorter than three symbols is dropped.
func Codons(s string) []string {
	out := make([]string, 0, len(s)/3)
	for i := 0; i+3 <= len(s); i += 3 {
		out = append(out, s[i:i+3])
	}
	return out
}
