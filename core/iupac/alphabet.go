package iupac

import "strings"

const (
	// NucleotideAlphabet is every symbol accepted as a (possibly ambiguous) base.
	NucleotideAlphabet = "abcdghikmnrstuvwy"
	// AminoAcidAlphabet is the one-letter residue alphabet, including B/Z/X/U/O.
	AminoAcidAlphabet = "abcdefghiklmnopqrstuvwxyz"
)

// IsNucleotide reports whether every letter of s (case-insensitive) is a base symbol.
func IsNucleotide(s string) bool { return within(s, NucleotideAlphabet) }

// IsAminoAcid reports whether every letter of s (case-insensitive) is a residue symbol.
func IsAminoAcid(s string) bool { return within(s, AminoAcidAlphabet) }

func within(s, alphabet string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if strings.IndexByte(alphabet, c) < 0 {
			return false
		}
	}
	return true
}

// Nucleotides names every base symbol (lower-case keys).
var Nucleotides = map[byte]string{
	'a': "adenine",
	'c': "cytosine",
	'g': "guanine",
	't': "thymine",
	'u': "uracil",
	'r': "purine (a/g)",
	'y': "pyrimidine (c/t)",
	'm': "amino (a/c)",
	'k': "keto (g/t)",
	's': "strong (c/g)",
	'w': "weak (a/t)",
	'b': "not a (c/g/t)",
	'd': "not c (a/g/t)",
	'h': "not g (a/c/t)",
	'v': "not t (a/c/g)",
	'n': "any (a/c/g/t)",
	'i': "inosine",
}

// AminoAcid carries the three-letter code and full name of a residue.
type AminoAcid struct {
	Code string
	Name string
}

// AminoAcids names every residue symbol (upper-case keys), plus stop.
var AminoAcids = map[byte]AminoAcid{
	'A': {"Ala", "alanine"},
	'B': {"Asx", "asparagine or aspartic acid"},
	'C': {"Cys", "cysteine"},
	'D': {"Asp", "aspartic acid"},
	'E': {"Glu", "glutamic acid"},
	'F': {"Phe", "phenylalanine"},
	'G': {"Gly", "glycine"},
	'H': {"His", "histidine"},
	'I': {"Ile", "isoleucine"},
	'K': {"Lys", "lysine"},
	'L': {"Leu", "leucine"},
	'M': {"Met", "methionine"},
	'N': {"Asn", "asparagine"},
	'O': {"Pyl", "pyrrolysine"},
	'P': {"Pro", "proline"},
	'Q': {"Gln", "glutamine"},
	'R': {"Arg", "arginine"},
	'S': {"Ser", "serine"},
	'T': {"Thr", "threonine"},
	'U': {"Sec", "selenocysteine"},
	'V': {"Val", "valine"},
	'W': {"Trp", "tryptophan"},
	'X': {"Xaa", "unknown"},
	'Y': {"Tyr", "tyrosine"},
	'Z': {"Glx", "glutamine or glutamic acid"},
	'*': {"Ter", "stop"},
}
