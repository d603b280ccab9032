// core/record/parse.go
package record

import (
	"regexp"
	"strings"

	"napoop-core/iupac"
)

// Layout patterns are tried in order; the first match wins. GenBank and EMBL
// records may follow arbitrary leading text.
var (
	reGenBank = regexp.MustCompile(`(?s)(?:\A|\n)LOCUS[ \t]+(\S+)[^\n]*\n(?:.*?\n)?ORIGIN[^\n]*\n([ \t]*1[ \t].*?)\n//[ \t\r]*(?:\n|\z)`)
	reEMBL    = regexp.MustCompile(`(?s)(?:\A|\n)ID[ \t]+(\S+)[^\n]*\n(?:.*?\n)?SQ[^\n]*((?:\n.*?)?)\n//[ \t\r]*(?:\n|\z)`)
	reRaw     = regexp.MustCompile(`\A[A-Za-z0-9\s:,-]*\z`)
	reFASTA   = regexp.MustCompile(`(?s)\A>([^\n]*)\n(.+)\z`)
)

// DefaultDefinition labels raw input, which carries no header.
const DefaultDefinition = "sequence"

func lettersOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// detect classifies text and extracts its definition and letters-only sequence.
func detect(text string) (Format, string, string, error) {
	if m := reGenBank.FindStringSubmatch(text); m != nil {
		return GenBank, m[1], lettersOnly(m[2]), nil
	}
	if m := reEMBL.FindStringSubmatch(text); m != nil {
		return EMBL, strings.TrimSuffix(m[1], ";"), lettersOnly(m[2]), nil
	}
	if reRaw.MatchString(text) {
		return Raw, DefaultDefinition, lettersOnly(text), nil
	}
	if m := reFASTA.FindStringSubmatch(text); m != nil {
		return FASTA, strings.TrimSuffix(m[1], "\r"), lettersOnly(m[2]), nil
	}
	return 0, "", "", &UnknownFormatError{Input: text}
}

// diagnose checks a sequence against the nucleotide and amino-acid alphabets.
func diagnose(seq string) Warning {
	switch {
	case iupac.IsNucleotide(seq):
		return NoWarning
	case iupac.IsAminoAcid(seq):
		return PossiblyAminoAcid
	default:
		return UnknownNucleotide
	}
}
