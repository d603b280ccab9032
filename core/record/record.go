// Package record models a single parsed sequence record: the input text,
// its detected format, a definition line, and the letters-only sequence.
package record

import "sync/atomic"

// Sequence is the read side of a record, one accessor per field.
type Sequence interface {
	Original() string
	Format() Format
	Definition() string
	Sequence() string
}

// Record is a parsed sequence. The zero value is not usable; build one with
// Parse or Parser.Parse.
type Record struct {
	original   string
	format     Format
	definition string
	sequence   string
}

var _ Sequence = (*Record)(nil)

func (r *Record) Original() string   { return r.original }
func (r *Record) Format() Format     { return r.format }
func (r *Record) Definition() string { return r.definition }
func (r *Record) Sequence() string   { return r.sequence }

// Len is the number of letters in the sequence.
func (r *Record) Len() int { return len(r.sequence) }

// SetDefinition replaces the definition line (used for header rewrites).
func (r *Record) SetDefinition(def string) { r.definition = def }

// Counter tallies records built by a Parser. It is safe for concurrent use.
type Counter struct {
	n atomic.Int64
}

func (c *Counter) add() {
	if c != nil {
		c.n.Add(1)
	}
}

// Value returns the number of records built so far.
func (c *Counter) Value() int64 {
	if c == nil {
		return 0
	}
	return c.n.Load()
}

// Option configures a Parser.
type Option func(*Parser)

// WithCounter makes the parser tally each record it builds or rebuilds.
func WithCounter(c *Counter) Option {
	return func(p *Parser) { p.counter = c }
}

// Parser builds records from raw text.
type Parser struct {
	counter *Counter
}

// NewParser returns a Parser configured by opts.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse detects the layout of text and builds a record from it. The
// returned Warning is advisory and never accompanies an error.
func (p *Parser) Parse(text string) (*Record, Warning, error) {
	r := &Record{}
	w, err := p.Reinitialize(r, text)
	if err != nil {
		return nil, NoWarning, err
	}
	return r, w, nil
}

// Reinitialize discards every field of r and rebuilds it from text. On
// error r is left unchanged.
func (p *Parser) Reinitialize(r *Record, text string) (Warning, error) {
	f, def, seq, err := detect(text)
	if err != nil {
		return NoWarning, err
	}
	*r = Record{original: text, format: f, definition: def, sequence: seq}
	p.counter.add()
	return diagnose(seq), nil
}

var defaultParser = NewParser()

// Parse builds a record with the default (uncounted) parser.
func Parse(text string) (*Record, Warning, error) { return defaultParser.Parse(text) }

// Reinitialize rebuilds r in place with the default parser.
func Reinitialize(r *Record, text string) (Warning, error) {
	return defaultParser.Reinitialize(r, text)
}

// New builds a record directly from a definition and sequence, as if it had
// been read from a FASTA file. Non-letters in seq are dropped.
func New(definition, seq string) *Record {
	return &Record{
		original:   ">" + definition + "\n" + seq + "\n",
		format:     FASTA,
		definition: definition,
		sequence:   lettersOnly(seq),
	}
}
