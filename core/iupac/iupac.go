// core/iupac/iupac.go
package iupac

/* -------------------------- IUPAC lookup table -------------------------- */

var mask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		mask[c] = bits
		mask[c+'a'-'A'] = bits
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA uracil reads as T
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// Mask returns the A/C/G/T bit set a symbol stands for (0 for non-nucleotides).
func Mask(c byte) byte { return mask[c] }

// Expand lists the concrete lower-case bases a symbol stands for, in acgt order.
func Expand(c byte) []byte {
	m := mask[c]
	if m == 0 {
		return nil
	}
	out := make([]byte, 0, 4)
	for i, b := range []byte("acgt") {
		if m&(1<<i) != 0 {
			out = append(out, b)
		}
	}
	return out
}
