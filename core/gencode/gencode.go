// Package gencode holds the standard genetic code and translates codons,
// falling back to degenerate and two-letter codons before giving up.
package gencode

import (
	"strings"

	"napoop-core/iupac"
)

// Unknown is emitted for codons no table can resolve.
const Unknown = 'X'

// Standard maps the 64 unambiguous codons (lower-case) to one-letter residues.
var Standard = map[string]byte{
	"ttt": 'F', "ttc": 'F', "tta": 'L', "ttg": 'L',
	"tct": 'S', "tcc": 'S', "tca": 'S', "tcg": 'S',
	"tat": 'Y', "tac": 'Y', "taa": '*', "tag": '*',
	"tgt": 'C', "tgc": 'C', "tga": '*', "tgg": 'W',
	"ctt": 'L', "ctc": 'L', "cta": 'L', "ctg": 'L',
	"cct": 'P', "ccc": 'P', "cca": 'P', "ccg": 'P',
	"cat": 'H', "cac": 'H', "caa": 'Q', "cag": 'Q',
	"cgt": 'R', "cgc": 'R', "cga": 'R', "cgg": 'R',
	"att": 'I', "atc": 'I', "ata": 'I', "atg": 'M',
	"act": 'T', "acc": 'T', "aca": 'T', "acg": 'T',
	"aat": 'N', "aac": 'N', "aaa": 'K', "aag": 'K',
	"agt": 'S', "agc": 'S', "aga": 'R', "agg": 'R',
	"gtt": 'V', "gtc": 'V', "gta": 'V', "gtg": 'V',
	"gct": 'A', "gcc": 'A', "gca": 'A', "gcg": 'A',
	"gat": 'D', "gac": 'D', "gaa": 'E', "gag": 'E',
	"ggt": 'G', "ggc": 'G', "gga": 'G', "ggg": 'G',
}

var (
	codons  map[string]byte // Standard plus every ambiguity triplet that resolves to one residue
	doublet map[string]byte // two-letter prefixes whose third position is irrelevant
)

const symbols = "acgtryswkmbdhvn"

func init() {
	codons = make(map[string]byte, 512)
	for k, v := range Standard {
		codons[k] = v
	}
	doublet = make(map[string]byte, 64)
	for i := 0; i < len(symbols); i++ {
		for j := 0; j < len(symbols); j++ {
			pre := []byte{symbols[i], symbols[j]}
			if aa, ok := resolve(pre[0], pre[1], 'n'); ok {
				doublet[string(pre)] = aa
			}
			for k := 0; k < len(symbols); k++ {
				c := string(append(pre[:2:2], symbols[k]))
				if _, ok := codons[c]; ok {
					continue
				}
				if aa, ok := resolve(c[0], c[1], c[2]); ok {
					codons[c] = aa
				}
			}
		}
	}
}

// resolve expands an ambiguity triplet and returns its residue if every
// expansion agrees.
func resolve(x, y, z byte) (byte, bool) {
	var aa byte
	for _, a := range iupac.Expand(x) {
		for _, b := range iupac.Expand(y) {
			for _, c := range iupac.Expand(z) {
				r := Standard[string([]byte{a, b, c})]
				if aa == 0 {
					aa = r
				} else if r != aa {
					return 0, false
				}
			}
		}
	}
	return aa, aa != 0
}

// Codon translates a single three-letter codon, case-insensitively.
// Unresolvable codons return Unknown.
func Codon(c string) byte {
	c = strings.ToLower(c)
	if aa, ok := codons[c]; ok {
		return aa
	}
	if len(c) >= 2 {
		if aa, ok := doublet[c[:2]]; ok {
			return aa
		}
	}
	return Unknown
}

// Translate reads seq as consecutive non-overlapping codons from its first
// base. U is read as T; a trailing partial codon is dropped.
func Translate(seq string) string {
	n := len(seq) / 3
	out := make([]byte, 0, n)
	buf := make([]byte, 3)
	for i := 0; i < n; i++ {
		copy(buf, seq[i*3:i*3+3])
		for j, b := range buf {
			switch b {
			case 'u':
				buf[j] = 't'
			case 'U':
				buf[j] = 'T'
			}
		}
		out = append(out, Codon(string(buf)))
	}
	return string(out)
}
