// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"napoop/internal/pretty"
	"napoop/pkg/api"
)

func init() { Register("text", writeText) }

func header(w io.Writer, o Options, line string) error {
	if !o.Header {
		return nil
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// writeText prints TSV rows (or a styled block when o.Pretty is set).
func writeText(w io.Writer, v any, o Options) error {
	var err error
	switch r := v.(type) {
	case api.RecordV1:
		if err = header(w, o, "definition\tformat\tlength\twarning"); err == nil {
			_, err = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Definition, r.Format, r.Length, r.Warning)
		}
	case api.LengthV1:
		_, err = fmt.Fprintf(w, "%d\n", r.Length)
	case api.SequenceV1:
		_, err = fmt.Fprintln(w, r.Sequence)
	case api.CpGV1:
		if err = header(w, o, "score\tgc"); err == nil {
			_, err = fmt.Fprintf(w, "%.4f\t%.4f\n", r.Score, r.GC)
		}
	case api.CompositionV1:
		if o.Pretty {
			_, err = io.WriteString(w, pretty.New(w, pretty.DefaultOptions).Composition(r))
			break
		}
		if err = header(w, o, "symbol\tcount\tfraction\tname"); err != nil {
			break
		}
		for _, s := range r.Symbols {
			if _, err = fmt.Fprintf(w, "%s\t%d\t%.4f\t%s\n", s.Symbol, s.Count, s.Fraction, s.Name); err != nil {
				break
			}
		}
	case api.TranslationV1:
		if err = header(w, o, "frame\tprotein"); err == nil {
			_, err = fmt.Fprintf(w, "%d\t%s\n", r.Frame, r.Protein)
		}
	case api.PeriodicityV1:
		if o.Pretty {
			_, err = io.WriteString(w, pretty.New(w, pretty.DefaultOptions).Histogram(r))
			break
		}
		if err = header(w, o, "oligo\toffset\tcount"); err != nil {
			break
		}
		for _, b := range r.Histogram {
			if _, err = fmt.Fprintf(w, "%s\t%d\t%d\n", r.Oligo, b.Offset, b.Count); err != nil {
				break
			}
		}
	case api.RatioV1:
		if err = header(w, o, "oligo\tperiod\tratio"); err == nil {
			_, err = fmt.Fprintf(w, "%s\t%d\t%.4f\n", r.Oligo, r.Period, r.Ratio)
		}
	case api.ComparisonV1:
		if r.Match {
			return nil
		}
		if o.Pretty {
			_, err = io.WriteString(w, pretty.New(w, pretty.DefaultOptions).Mismatch(r))
			break
		}
		if err = header(w, o, "position\ta\tb"); err == nil {
			_, err = fmt.Fprintf(w, "%d\t%s\t%s\n", r.Position, r.SymbolA, r.SymbolB)
		}
	default:
		return fmt.Errorf("text: %w for %T", ErrUnsupported, v)
	}
	return err
}
