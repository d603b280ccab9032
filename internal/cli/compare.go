package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"napoop-core/compare"
	"napoop-core/record"
	"napoop/internal/pretty"
	"napoop/pkg/api"
)

func newCompareCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Report the first position where two records differ",
		Long: `Compares two sequences case-insensitively. Identical sequences print
nothing and exit 0; otherwise the first mismatch (or the point where the
shorter sequence ends, shown as '-') is printed and the exit status is 1.`,
		Args: argsRange(2, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" && args[1] == "-" {
				return &UsageError{Err: errors.New("stdin can supply only one of the two records")}
			}
			a, _, err := s.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			b, _, err := s.load(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			res := compare.Records(a, b)
			if err := s.emit(comparison(a, b, res, pretty.DefaultOptions.Flank)); err != nil {
				return err
			}
			if !res.Match() {
				return ErrMismatch
			}
			return nil
		},
	}
}

// comparison builds the wire result, with up to flank letters of context
// on either side of a mismatch.
func comparison(a, b *record.Record, res compare.Result, flank int) api.ComparisonV1 {
	out := api.ComparisonV1{A: a.Definition(), B: b.Definition(), Match: res.Match()}
	if out.Match {
		return out
	}
	out.Position = res.Position
	out.SymbolA = string(res.A)
	out.SymbolB = string(res.B)
	start := res.Position - flank
	if start < 1 {
		start = 1
	}
	window := func(seq string) string {
		lo, hi := start-1, res.Position+flank
		if hi > len(seq) {
			hi = len(seq)
		}
		if lo >= hi {
			return ""
		}
		return seq[lo:hi]
	}
	out.Context = &api.ContextV1{Start: start, A: window(a.Sequence()), B: window(b.Sequence())}
	return out
}
