// core/oligo/oligo.go
package oligo

// Occurrences returns every start offset of motif in seq, overlaps included,
// compared case-insensitively. An empty motif never occurs.
func Occurrences(seq, motif string) []int {
	return NewScanner(motif).Scan(seq)[0]
}
