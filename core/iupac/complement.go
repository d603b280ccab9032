// core/iupac/complement.go
package iupac

var complement [256]byte

func init() {
	pairs := [][2]byte{
		{'a', 't'}, {'t', 'a'}, {'c', 'g'}, {'g', 'c'},
		{'m', 'k'}, {'k', 'm'}, {'r', 'y'}, {'y', 'r'},
		{'w', 'w'}, {'s', 's'},
		{'v', 'b'}, {'b', 'v'}, {'h', 'd'}, {'d', 'h'},
		{'u', 'a'}, {'n', 'n'},
	}
	for _, p := range pairs {
		complement[p[0]] = p[1]
		complement[p[0]-'a'+'A'] = p[1] - 'a' + 'A'
	}
}

// Complement maps one symbol to its partner, preserving case.
// Symbols outside the table pass through unchanged.
func Complement(c byte) byte {
	if x := complement[c]; x != 0 {
		return x
	}
	return c
}

// RevComp returns the reverse-complement of seq.
func RevComp(seq string) string {
	n := len(seq)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return string(out)
}
