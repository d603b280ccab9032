package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"napoop-core/engine"
	"napoop/internal/config"
	"napoop/pkg/api"
)

func newComplementCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "complement [file|-]",
		Aliases: []string{"revcomp"},
		Short:   "Reverse-complement the sequence (IUPAC aware, case preserved)",
		Args:    argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, _, err := s.load(cmd.Context(), inputPath(args, 0))
			if err != nil {
				return err
			}
			return s.emit(api.SequenceV1{
				Definition: rec.Definition(),
				Operation:  "complement",
				Sequence:   engine.New(rec).Complementary(),
			})
		},
	}
}

func newSnipCmd(s *session) *cobra.Command {
	var begin, end int
	cmd := &cobra.Command{
		Use:   "snip [file|-]",
		Short: "Extract a 1-based inclusive region",
		Long: `Extracts positions --begin..--end (1-based, inclusive).

Without --pad, out-of-range bounds are clamped to the sequence, and
begin > end returns the reverse-complement of end..begin.
With --pad, positions outside the sequence are filled with 'n' and
begin must not exceed end.`,
		Args: argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, _, err := s.load(cmd.Context(), inputPath(args, 0))
			if err != nil {
				return err
			}
			e := engine.New(rec)
			var region string
			if s.cfg.Pad {
				region, err = e.SnipPadded(begin, end)
			} else {
				region, err = e.Snip(begin, end)
			}
			var (
				inv  *engine.InvertedRangeError
				long *engine.RegionTooLongError
			)
			if errors.As(err, &inv) || errors.As(err, &long) {
				return &UsageError{Err: fmt.Errorf("snip: %w", err)}
			}
			if err != nil {
				return err
			}
			return s.emit(api.SequenceV1{
				Definition: rec.Definition(),
				Operation:  "snip",
				Region:     fmt.Sprintf("%d..%d", begin, end),
				Sequence:   region,
			})
		},
	}
	cmd.Flags().IntVarP(&begin, "begin", "b", 1, "first position (1-based)")
	cmd.Flags().IntVarP(&end, "end", "e", 0, "last position (1-based, inclusive)")
	cmd.Flags().Bool("pad", false, "pad out-of-range positions with n instead of clamping")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newTranslateCmd(s *session) *cobra.Command {
	var (
		frame int
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "translate [file|-]",
		Short: "Translate one reading frame (or all six) with the standard code",
		Long: `Frames 0-2 read the forward strand from offsets 0-2; frames 3-5 read the
reverse-complement from offsets 0-2. Degenerate codons resolve when every
expansion agrees; unresolvable codons become X.`,
		Args: argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && (frame < 0 || frame > 5) {
				return &UsageError{Err: fmt.Errorf("--frame must be in 0..5, got %d", frame)}
			}
			rec, _, err := s.load(cmd.Context(), inputPath(args, 0))
			if err != nil {
				return err
			}
			e := engine.New(rec)
			frames := []int{frame}
			if all {
				frames = []int{0, 1, 2, 3, 4, 5}
			}
			out := make([]any, 0, len(frames))
			for _, f := range frames {
				p, err := e.Translate(f)
				if err != nil {
					return err
				}
				out = append(out, api.TranslationV1{Definition: rec.Definition(), Frame: f, Protein: p})
			}
			return s.emit(out...)
		},
	}
	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "reading frame 0..5")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "translate all six frames")
	return cmd
}

func newHeaderCmd(s *session) *cobra.Command {
	var def string
	cmd := &cobra.Command{
		Use:   "header [file|-]",
		Short: "Replace the definition line and print the record as FASTA",
		Args:  argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, _, err := s.load(cmd.Context(), inputPath(args, 0))
			if err != nil {
				return err
			}
			old := rec.Definition()
			rec.SetDefinition(def)
			s.log.Debug("definition replaced", "old", old, "new", def)
			format := s.cfg.Output
			if format == config.OutputText {
				format = config.OutputFASTA
			}
			return s.emitAs(format, api.SequenceV1{
				Definition: rec.Definition(),
				Operation:  "header",
				Sequence:   rec.Sequence(),
			})
		},
	}
	cmd.Flags().StringVarP(&def, "definition", "d", "", "new definition line")
	_ = cmd.MarkFlagRequired("definition")
	return cmd
}
