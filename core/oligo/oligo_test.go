package oligo

import (
	"reflect"
	"testing"
)

func TestMotif(t *testing.T) {
	cases := map[string]string{
		"CpG":    "cg",
		"ApA":    "aa",
		"CpGpA":  "cga",
		" 'tg' ": "tg",
		"P":      "",
	}
	for in, want := range cases {
		if got := Motif(in); got != want {
			t.Errorf("Motif(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	if m, err := Validate("CpG"); err != nil || m != "cg" {
		t.Fatalf("Validate(CpG) = %q, %v", m, err)
	}
	if _, err := Validate("p"); err == nil {
		t.Fatalf("expected empty-oligo error")
	}
	if _, err := Validate("cXg"); err == nil {
		t.Fatalf("expected invalid-base error")
	}
}

func TestOccurrences(t *testing.T) {
	tests := []struct {
		seq, motif string
		want       []int
	}{
		{"ACGTACGT", "cg", []int{1, 5}},
		{"aaaa", "aa", []int{0, 1, 2}},
		{"acgt", "", nil},
		{"ac", "acg", nil},
		{"ttt", "cg", nil},
	}
	for _, tc := range tests {
		if got := Occurrences(tc.seq, tc.motif); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Occurrences(%q, %q) = %v, want %v", tc.seq, tc.motif, got, tc.want)
		}
	}
}

func TestScannerMultipleMotifs(t *testing.T) {
	sc := NewScanner("cg", "CGC", "gc", "")
	got := sc.Scan("aCGCGcg")
	want := [][]int{{1, 3, 5}, {1, 3}, {2, 4}, nil}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Scan = %v, want %v", got, want)
	}
}

func TestScannerSharedSuffix(t *testing.T) {
	got := NewScanner("acgt", "cg").Scan("xacgtx")
	want := [][]int{{1}, {2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Scan = %v, want %v", got, want)
	}
}
