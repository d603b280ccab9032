// Package pretty renders results as styled terminal blocks. Styles come
// from a renderer bound to the destination writer, so piped output carries
// no color codes.
package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"napoop/pkg/api"
)

// Options control the rendering.
type Options struct {
	// Widest histogram bar in glyphs. If <=0, use default (40).
	MaxBar int
	// Letters shown on either side of a mismatch. If <=0, use default (10).
	Flank int

	BarGlyph    string // default "█"
	CaretGlyph  string // default "^"
	BorderStyle lipgloss.Border
}

// DefaultOptions is the standard look.
var DefaultOptions = Options{
	MaxBar:      40,
	Flank:       10,
	BarGlyph:    "█",
	CaretGlyph:  "^",
	BorderStyle: lipgloss.RoundedBorder(),
}

// Printer renders blocks for one destination.
type Printer struct {
	opt    Options
	plain  lipgloss.Style
	box    lipgloss.Style
	title  lipgloss.Style
	cell   lipgloss.Style
	bar    lipgloss.Style
	accent lipgloss.Style
}

// New returns a Printer whose color profile follows w.
func New(w io.Writer, opt Options) *Printer {
	if opt.MaxBar <= 0 {
		opt.MaxBar = DefaultOptions.MaxBar
	}
	if opt.Flank <= 0 {
		opt.Flank = DefaultOptions.Flank
	}
	if opt.BarGlyph == "" {
		opt.BarGlyph = DefaultOptions.BarGlyph
	}
	if opt.CaretGlyph == "" {
		opt.CaretGlyph = DefaultOptions.CaretGlyph
	}
	r := lipgloss.NewRenderer(w)
	return &Printer{
		opt:    opt,
		plain:  r.NewStyle(),
		box:    r.NewStyle().Border(opt.BorderStyle).Padding(0, 1),
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		cell:   r.NewStyle().PaddingRight(2),
		bar:    r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		accent: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B")),
	}
}

// table lays rows out in left-aligned columns.
func (p *Printer) table(head []string, rows [][]string) string {
	widths := make([]int, len(head))
	for i, h := range head {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i, c := range r {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	line := func(cells []string, st lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = p.cell.Render(st.Render(c) + strings.Repeat(" ", widths[i]-lipgloss.Width(c)))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	lines := []string{line(head, p.title)}
	for _, r := range rows {
		lines = append(lines, line(r, p.plain))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Composition renders a composition table in a box.
func (p *Printer) Composition(c api.CompositionV1) string {
	rows := make([][]string, 0, len(c.Symbols))
	for _, s := range c.Symbols {
		rows = append(rows, []string{s.Symbol, fmt.Sprint(s.Count), fmt.Sprintf("%.4f", s.Fraction), s.Name})
	}
	body := p.title.Render(fmt.Sprintf("%s (%d)", c.Definition, c.Length)) + "\n" +
		p.table([]string{"symbol", "count", "fraction", "name"}, rows)
	return p.box.Render(body) + "\n"
}

// Histogram renders offset counts as horizontal bars.
func (p *Printer) Histogram(r api.PeriodicityV1) string {
	max := 0
	for _, b := range r.Histogram {
		if b.Count > max {
			max = b.Count
		}
	}
	var lines []string
	lines = append(lines, p.title.Render(fmt.Sprintf("%s  %s  window %d", r.Definition, r.Oligo, r.Window)))
	if len(r.Histogram) == 0 {
		lines = append(lines, "(no occurrences within window)")
	}
	for _, b := range r.Histogram {
		n := b.Count * p.opt.MaxBar / max
		if n == 0 {
			n = 1
		}
		lines = append(lines, fmt.Sprintf("%4d %s %d", b.Offset, p.bar.Render(strings.Repeat(p.opt.BarGlyph, n)), b.Count))
	}
	return p.box.Render(strings.Join(lines, "\n")) + "\n"
}

// Mismatch renders both sequences around the first difference with a caret
// under the differing column.
func (p *Printer) Mismatch(c api.ComparisonV1) string {
	if c.Match || c.Context == nil {
		return ""
	}
	col := c.Position - c.Context.Start
	width := max(lipgloss.Width(c.A), lipgloss.Width(c.B))
	label := func(s string) string { return s + strings.Repeat(" ", width-lipgloss.Width(s)) + "  " }
	mark := func(seq string) string {
		if col < 0 || col >= len(seq) {
			return seq
		}
		return seq[:col] + p.accent.Render(seq[col:col+1]) + seq[col+1:]
	}
	lines := []string{
		p.title.Render(fmt.Sprintf("first mismatch at %d", c.Position)),
		label(c.A) + mark(c.Context.A),
		label(c.B) + mark(c.Context.B),
		strings.Repeat(" ", width+2+col) + p.accent.Render(p.opt.CaretGlyph),
	}
	return p.box.Render(strings.Join(lines, "\n")) + "\n"
}
