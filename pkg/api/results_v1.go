// pkg/api/results_v1.go
package api

// Schemas below are the stable JSON/JSONL wire format (v1).
// Keep fields, names, and types stable. Add new fields only with ",omitempty".

// RecordV1 describes a parsed record.
type RecordV1 struct {
	Definition string `json:"definition"`
	Format     string `json:"format"`
	Length     int    `json:"length"`
	Warning    string `json:"warning,omitempty"`
}

// LengthV1 is the letter count of a record.
type LengthV1 struct {
	Definition string `json:"definition"`
	Length     int    `json:"length"`
}

// SequenceV1 is a derived sequence (complement, snip, rewritten header).
type SequenceV1 struct {
	Definition string `json:"definition"`
	Operation  string `json:"operation"` // "complement" | "snip" | "header"
	Region     string `json:"region,omitempty"` // "begin..end" for snips
	Sequence   string `json:"sequence"`
}

// CpGV1 is the CpG observed/expected score and G+C fraction.
type CpGV1 struct {
	Definition string  `json:"definition"`
	Score      float64 `json:"score"`
	GC         float64 `json:"gc"`
}

// SymbolCountV1 is one row of a composition table.
type SymbolCountV1 struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name,omitempty"`
	Count    int     `json:"count"`
	Fraction float64 `json:"fraction"`
}

// CompositionV1 is the per-letter composition of a record.
type CompositionV1 struct {
	Definition string          `json:"definition"`
	Length     int             `json:"length"`
	Symbols    []SymbolCountV1 `json:"symbols"`
}

// TranslationV1 is one reading frame translated to residues.
type TranslationV1 struct {
	Definition string `json:"definition"`
	Frame      int    `json:"frame"` // 0..2 forward, 3..5 reverse-complement
	Protein    string `json:"protein"`
}

// BinV1 is one histogram bin.
type BinV1 struct {
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// PeriodicityV1 lists distances between nearby occurrences of an oligo.
type PeriodicityV1 struct {
	Definition string  `json:"definition"`
	Oligo      string  `json:"oligo"`
	Window     int     `json:"window"`
	Offsets    []int   `json:"offsets"`
	Histogram  []BinV1 `json:"histogram"`
}

// RatioV1 is the fraction of oligo occurrences with a partner at Period.
type RatioV1 struct {
	Definition string  `json:"definition"`
	Oligo      string  `json:"oligo"`
	Period     int     `json:"period"`
	Ratio      float64 `json:"ratio"`
}

// ContextV1 shows both sequences around a mismatch.
type ContextV1 struct {
	Start int    `json:"start"` // 1-based position of the first letter shown
	A     string `json:"a"`
	B     string `json:"b"`
}

// ComparisonV1 is the outcome of comparing two records.
type ComparisonV1 struct {
	A        string     `json:"a"`
	B        string     `json:"b"`
	Match    bool       `json:"match"`
	Position int        `json:"position,omitempty"`
	SymbolA  string     `json:"symbol_a,omitempty"`
	SymbolB  string     `json:"symbol_b,omitempty"`
	Context  *ContextV1 `json:"context,omitempty"`
}
