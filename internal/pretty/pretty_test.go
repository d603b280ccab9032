package pretty

import (
	"bytes"
	"strings"
	"testing"

	"napoop/pkg/api"
)

func TestCompositionTable(t *testing.T) {
	var b bytes.Buffer
	out := New(&b, DefaultOptions).Composition(api.CompositionV1{
		Definition: "seq1",
		Length:     4,
		Symbols: []api.SymbolCountV1{
			{Symbol: "a", Name: "adenine", Count: 3, Fraction: 0.75},
			{Symbol: "c", Name: "cytosine", Count: 1, Fraction: 0.25},
		},
	})
	for _, want := range []string{"seq1 (4)", "symbol", "adenine", "0.7500", "cytosine"} {
		if !strings.Contains(out, want) {
			t.Errorf("composition block missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal output must not carry escape codes")
	}
}

func TestHistogramScalesBars(t *testing.T) {
	var b bytes.Buffer
	p := New(&b, Options{MaxBar: 4, BarGlyph: "#"})
	out := p.Histogram(api.PeriodicityV1{
		Definition: "s", Oligo: "CpG", Window: 50,
		Histogram: []api.BinV1{{Offset: 2, Count: 4}, {Offset: 10, Count: 1}},
	})
	if !strings.Contains(out, "   2 #### 4") {
		t.Errorf("expected full bar for the largest bin:\n%s", out)
	}
	if !strings.Contains(out, "  10 # 1") {
		t.Errorf("expected one-glyph bar for the smallest bin:\n%s", out)
	}
}

func TestHistogramEmpty(t *testing.T) {
	var b bytes.Buffer
	out := New(&b, DefaultOptions).Histogram(api.PeriodicityV1{Definition: "s", Oligo: "CpG", Window: 50})
	if !strings.Contains(out, "no occurrences") {
		t.Errorf("expected empty notice:\n%s", out)
	}
}

func TestMismatchCaret(t *testing.T) {
	var b bytes.Buffer
	out := New(&b, DefaultOptions).Mismatch(api.ComparisonV1{
		A: "a", B: "b", Position: 4, SymbolA: "T", SymbolB: "A",
		Context: &api.ContextV1{Start: 1, A: "ACGT", B: "ACGA"},
	})
	for _, want := range []string{"first mismatch at 4", "a  ACGT", "b  ACGA", "      ^"} {
		if !strings.Contains(out, want) {
			t.Errorf("mismatch block missing %q:\n%s", want, out)
		}
	}
}

func TestMismatchAlignsWideLabels(t *testing.T) {
	var b bytes.Buffer
	out := New(&b, DefaultOptions).Mismatch(api.ComparisonV1{
		A: "αβγ", B: "b", Position: 2, SymbolA: "C", SymbolB: "G",
		Context: &api.ContextV1{Start: 1, A: "ACGT", B: "AGGT"},
	})
	for _, want := range []string{"αβγ  ACGT", "b    AGGT", "│       ^"} {
		if !strings.Contains(out, want) {
			t.Errorf("mismatch block missing %q:\n%s", want, out)
		}
	}
}

func TestMismatchOnMatchIsEmpty(t *testing.T) {
	var b bytes.Buffer
	if out := New(&b, DefaultOptions).Mismatch(api.ComparisonV1{Match: true}); out != "" {
		t.Fatalf("match should render nothing, got %q", out)
	}
}
