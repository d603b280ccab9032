package compare

import (
	"testing"

	"napoop-core/record"
)

func TestSequences(t *testing.T) {
	tests := []struct {
		a, b string
		want Result
	}{
		{"ACGT", "ACGT", Result{}},
		{"ACGT", "acgt", Result{}},
		{"", "", Result{}},
		{"ACGT", "ACGA", Result{Position: 4, A: 'T', B: 'A'}},
		{"tACG", "AACG", Result{Position: 1, A: 't', B: 'A'}},
		{"ACG", "ACGT", Result{Position: 4, A: Gap, B: 'T'}},
		{"ACGTT", "acgt", Result{Position: 5, A: 'T', B: Gap}},
		{"", "A", Result{Position: 1, A: Gap, B: 'A'}},
	}
	for _, tc := range tests {
		got := Sequences(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Sequences(%q, %q) = %+v, want %+v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRecords(t *testing.T) {
	a := record.New("a", "ACGT")
	if !Records(a, record.New("b", "acgt")).Match() {
		t.Fatalf("identical sequences should match")
	}
	if Records(a, record.New("b", "ACGA")).Match() {
		t.Fatalf("different sequences should not match")
	}
}
