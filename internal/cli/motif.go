package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"

	"napoop-core/engine"
	"napoop-core/oligo"
	"napoop/internal/common"
	"napoop/pkg/api"
)

func newPeriodicityCmd(s *session) *cobra.Command {
	var oligos []string
	cmd := &cobra.Command{
		Use:   "periodicity [file|-]",
		Short: "Histogram of distances between nearby occurrences of an oligo",
		Long: `For every occurrence of each oligo, records the distance to every other
occurrence starting within --window nt. Mnemonic names are accepted:
the linker p is ignored, so CpG means cg.`,
		Args: argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := common.UniqueFold(oligos, oligo.Motif)
			if len(names) == 0 {
				return &UsageError{Err: errors.New("at least one --oligo is required")}
			}
			for _, n := range names {
				if _, err := oligo.Validate(n); err != nil {
					return &UsageError{Err: err}
				}
			}
			rec, _, err := s.load(cmd.Context(), inputPath(args, 0))
			if err != nil {
				return err
			}
			offsets := engine.New(rec).PeriodicityAll(names, s.cfg.Window)
			out := make([]any, 0, len(names))
			for i, n := range names {
				out = append(out, api.PeriodicityV1{
					Definition: rec.Definition(),
					Oligo:      n,
					Window:     s.cfg.Window,
					Offsets:    nonNil(offsets[i]),
					Histogram:  histogram(offsets[i]),
				})
			}
			return s.emit(out...)
		},
	}
	cmd.Flags().StringSliceVar(&oligos, "oligo", []string{"CpG"}, "oligo(s) to scan (repeatable or comma-separated)")
	cmd.Flags().IntP("window", "w", engine.DefaultWindow, "scan window past each occurrence (nt)")
	return cmd
}

func nonNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

// histogram bins offsets in ascending offset order.
func histogram(offsets []int) []api.BinV1 {
	h := engine.Histogram(offsets)
	out := make([]api.BinV1, 0, len(h))
	for d, n := range h {
		out = append(out, api.BinV1{Offset: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

func newRatioCmd(s *session) *cobra.Command {
	var (
		name   string
		period int
	)
	cmd := &cobra.Command{
		Use:   "ratio [file|-]",
		Short: "Fraction of oligo occurrences with a partner exactly --period nt away",
		Args:  argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if period <= 0 {
				return &UsageError{Err: errors.New("--period must be ≥ 1")}
			}
			if _, err := oligo.Validate(name); err != nil {
				return &UsageError{Err: err}
			}
			rec, _, err := s.load(cmd.Context(), inputPath(args, 0))
			if err != nil {
				return err
			}
			return s.emit(api.RatioV1{
				Definition: rec.Definition(),
				Oligo:      name,
				Period:     period,
				Ratio:      engine.New(rec).PeriodRatio(name, period),
			})
		},
	}
	cmd.Flags().StringVar(&name, "oligo", "CpG", "oligo to test")
	cmd.Flags().IntVarP(&period, "period", "p", 0, "distance between occurrences (nt)")
	_ = cmd.MarkFlagRequired("period")
	return cmd
}
