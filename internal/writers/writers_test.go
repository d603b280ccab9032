package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"napoop/pkg/api"
)

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	err := Write("nope-format", &b, api.LengthV1{}, Options{})
	if err == nil || !strings.Contains(err.Error(), "unknown result format") {
		t.Fatalf("want 'unknown result format' error, got: %v", err)
	}
}

func TestTextRows(t *testing.T) {
	tests := []struct {
		name string
		v    any
		o    Options
		want string
	}{
		{"length", api.LengthV1{Length: 12}, Options{Header: true}, "12\n"},
		{"sequence", api.SequenceV1{Sequence: "ACGT"}, Options{Header: true}, "ACGT\n"},
		{"cpg", api.CpGV1{Score: 2, GC: 0.5}, Options{Header: true}, "score\tgc\n2.0000\t0.5000\n"},
		{"cpg no header", api.CpGV1{Score: 2, GC: 0.5}, Options{}, "2.0000\t0.5000\n"},
		{"record", api.RecordV1{Definition: "d", Format: "FASTA", Length: 4}, Options{}, "d\tFASTA\t4\t\n"},
		{"ratio", api.RatioV1{Oligo: "CpG", Period: 10, Ratio: 0.25}, Options{}, "CpG\t10\t0.2500\n"},
		{"match", api.ComparisonV1{Match: true}, Options{Header: true}, ""},
		{"mismatch", api.ComparisonV1{Position: 4, SymbolA: "T", SymbolB: "A"}, Options{Header: true}, "position\ta\tb\n4\tT\tA\n"},
		{"periodicity", api.PeriodicityV1{Oligo: "CpG", Histogram: []api.BinV1{{Offset: 4, Count: 2}}}, Options{}, "CpG\t4\t2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b bytes.Buffer
			if err := Write("text", &b, tc.v, tc.o); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if b.String() != tc.want {
				t.Fatalf("got %q, want %q", b.String(), tc.want)
			}
		})
	}
}

func TestWriteAllHeaderOnce(t *testing.T) {
	var b bytes.Buffer
	err := WriteAll("text", &b, Options{Header: true},
		api.TranslationV1{Frame: 0, Protein: "MK*"},
		api.TranslationV1{Frame: 1, Protein: "*N"},
	)
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	want := "frame\tprotein\n0\tMK*\n1\t*N\n"
	if b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
}

func TestWriteAllJSON(t *testing.T) {
	var one bytes.Buffer
	if err := WriteAll("json", &one, Options{}, api.LengthV1{Definition: "d", Length: 3}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	var l api.LengthV1
	if err := json.Unmarshal(one.Bytes(), &l); err != nil || l.Length != 3 {
		t.Fatalf("single item should encode as an object: %q (%v)", one.String(), err)
	}

	var many bytes.Buffer
	if err := WriteAll("json", &many, Options{}, api.LengthV1{Length: 1}, api.LengthV1{Length: 2}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	var ls []api.LengthV1
	if err := json.Unmarshal(many.Bytes(), &ls); err != nil || len(ls) != 2 {
		t.Fatalf("several items should encode as an array: %q (%v)", many.String(), err)
	}
}

func TestWriteAllJSONL(t *testing.T) {
	var b bytes.Buffer
	err := WriteAll("jsonl", &b, Options{},
		api.TranslationV1{Definition: "d", Frame: 0, Protein: "MK*"},
		api.TranslationV1{Definition: "d", Frame: 3, Protein: "LFH"},
	)
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", b.String())
	}
	var tr api.TranslationV1
	if err := json.Unmarshal([]byte(lines[1]), &tr); err != nil || tr.Frame != 3 || tr.Protein != "LFH" {
		t.Fatalf("bad jsonl line %q: %v", lines[1], err)
	}
}

func TestFASTA(t *testing.T) {
	var b bytes.Buffer
	err := Write("fasta", &b, api.SequenceV1{Definition: "seq1", Operation: "snip", Region: "1..4", Sequence: "ACGTACGT"}, Options{Width: 4})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := ">seq1 snip 1..4\nACGT\nACGT\n"
	if b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
}

func TestFASTAHeaderRewrite(t *testing.T) {
	var b bytes.Buffer
	err := Write("fasta", &b, api.SequenceV1{Definition: "new name", Operation: "header", Sequence: "acgt"}, Options{})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if b.String() != ">new name\nacgt\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestFASTATranslation(t *testing.T) {
	var b bytes.Buffer
	if err := Write("fasta", &b, api.TranslationV1{Definition: "p", Frame: 2, Protein: "MK*"}, Options{Width: 60}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if b.String() != ">p frame 2\nMK*\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestFASTAUnsupported(t *testing.T) {
	var b bytes.Buffer
	if err := Write("fasta", &b, api.CpGV1{}, Options{}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported for non-sequence result, got %v", err)
	}
}
