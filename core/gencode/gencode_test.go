package gencode

import "testing"

func TestStandardIsComplete(t *testing.T) {
	if len(Standard) != 64 {
		t.Fatalf("standard code has %d codons, want 64", len(Standard))
	}
	stops := 0
	for _, aa := range Standard {
		if aa == '*' {
			stops++
		}
	}
	if stops != 3 {
		t.Fatalf("standard code has %d stops, want 3", stops)
	}
}

func TestCodon(t *testing.T) {
	tests := []struct {
		codon string
		want  byte
	}{
		{"atg", 'M'},
		{"ATG", 'M'},
		{"taa", '*'},
		{"tty", 'F'},
		{"agr", 'R'},
		{"tar", '*'},
		{"ath", 'I'},
		{"mgr", 'R'},
		{"ytr", 'L'},
		{"tcn", 'S'},
		{"TCN", 'S'},
		{"ggb", 'G'},
		{"nnn", 'X'},
		{"atn", 'X'},
		{"tc-", 'S'}, // two-letter fallback
		{"gc?", 'A'},
		{"xyz", 'X'},
	}
	for _, tc := range tests {
		if got := Codon(tc.codon); got != tc.want {
			t.Errorf("Codon(%q) = %c, want %c", tc.codon, got, tc.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"atgaaataa", "MK*"},
		{"AUGAAAUAA", "MK*"},
		{"atgaaataag", "MK*"},
		{"atgaaataagc", "MK*"},
		{"at", ""},
		{"", ""},
		{"atgnnncgn", "MXR"},
	}
	for _, tc := range tests {
		if got := Translate(tc.in); got != tc.want {
			t.Errorf("Translate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
