package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"napoop-core/engine"
	"napoop-core/iupac"
	"napoop/pkg/api"
)

func newFormatCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "format [file|-]",
		Short: "Detect the format, definition, and length of a record",
		Args:  argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, w, err := s.load(cmd.Context(), inputPath(args, 0))
			if err != nil {
				return err
			}
			return s.emit(api.RecordV1{
				Definition: rec.Definition(),
				Format:     rec.Format().String(),
				Length:     rec.Len(),
				Warning:    w.String(),
			})
		},
	}
}

func newLengthCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "length [file|-]",
		Short: "Print the number of letters in the sequence",
		Args:  argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, _, err := s.load(cmd.Context(), inputPath(args, 0))
			if err != nil {
				return err
			}
			return s.emit(api.LengthV1{Definition: rec.Definition(), Length: engine.New(rec).Length()})
		},
	}
}

func newCompositionCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "composition [file|-]",
		Short: "Count each symbol of the sequence",
		Args:  argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, _, err := s.load(cmd.Context(), inputPath(args, 0))
			if err != nil {
				return err
			}
			return s.emit(composition(rec.Definition(), rec.Sequence(), engine.New(rec).Composition()))
		},
	}
}

// composition orders counts by symbol and names each symbol from the
// nucleotide table, or the residue table for non-nucleotide sequences.
func composition(def, seq string, counts map[byte]int) api.CompositionV1 {
	out := api.CompositionV1{Definition: def, Length: len(seq), Symbols: []api.SymbolCountV1{}}
	keys := make([]byte, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	nucleic := iupac.IsNucleotide(seq)
	for _, k := range keys {
		name := iupac.Nucleotides[k]
		if !nucleic {
			name = iupac.AminoAcids[strings.ToUpper(string(k))[0]].Name
		}
		out.Symbols = append(out.Symbols, api.SymbolCountV1{
			Symbol:   string(k),
			Name:     name,
			Count:    counts[k],
			Fraction: float64(counts[k]) / float64(len(seq)),
		})
	}
	return out
}

func newCpGCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "cpg [file|-]",
		Short: "CpG observed/expected score and G+C fraction",
		Args:  argsRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, _, err := s.load(cmd.Context(), inputPath(args, 0))
			if err != nil {
				return err
			}
			c := engine.New(rec).CpGScore()
			return s.emit(api.CpGV1{Definition: rec.Definition(), Score: c.Score, GC: c.GC})
		},
	}
}
