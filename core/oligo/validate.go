// core/oligo/validate.go
package oligo

import (
	"fmt"
	"strings"
	"unicode"

	"napoop-core/iupac"
)

// Normalize removes spaces/quotes and lower-cases bases.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}

// Motif turns a mnemonic oligo name such as "CpG" or "ApA" into the bases it
// names: the linker letter p is dropped and the rest normalized.
func Motif(name string) string {
	return strings.Map(func(r rune) rune {
		if r == 'p' || r == 'P' {
			return -1
		}
		return r
	}, Normalize(name))
}

// Validate returns the motif for name or an error if any symbol is not an
// IUPAC base.
func Validate(name string) (string, error) {
	m := Motif(name)
	if m == "" {
		return m, fmt.Errorf("empty oligo %q", name)
	}
	for i := 0; i < len(m); i++ {
		if iupac.Mask(m[i]) == 0 {
			return "", fmt.Errorf("invalid base %q at %d in oligo %q; allowed: A C G T U R Y S W K M B D H V N", m[i], i+1, name)
		}
	}
	return m, nil
}
