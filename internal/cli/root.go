// Package cli is for command line interactions with the napoop application
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"napoop-core/record"
	"napoop/internal/config"
	"napoop/internal/logging"
	"napoop/internal/version"
)

// session carries the per-invocation state shared by every command.
type session struct {
	stdout, stderr io.Writer

	v      *viper.Viper
	cfg    config.Config
	log    *log.Logger
	parser *record.Parser
	parsed *record.Counter
}

// NewRootCmd builds the command tree writing results to stdout and
// diagnostics to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	s := &session{stdout: stdout, stderr: stderr, v: viper.New(), parsed: &record.Counter{}}
	s.parser = record.NewParser(record.WithCounter(s.parsed))
	s.log = logging.New(stderr, "info")

	var cfgFile string
	root := &cobra.Command{
		Use:   "napoop",
		Short: "Nucleic-acid sequence utility",
		Long: `Reads one sequence record (GenBank, EMBL, FASTA, or raw letters) from a file
or stdin and applies one operation: complement, snip, translate, composition,
CpG scoring, oligo periodicity, or comparison with a second record.

Gzipped input is detected automatically; '-' or no file reads stdin.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(s.v, cfgFile)
			if err != nil {
				return &UsageError{Err: err}
			}
			s.cfg = cfg
			s.log = logging.New(stderr, cfg.Level())
			s.log.Debug("loaded config", "output", cfg.Output, "window", cfg.Window, "width", cfg.Width, "pad", cfg.Pad, "config", s.v.ConfigFileUsed())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			s.log.Debug("done", "command", cmd.Name(), "records", s.parsed.Value())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return &UsageError{Err: err} })

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./napoop.yaml or $HOME/.config/napoop/napoop.yaml)")
	pf.StringP("output", "o", config.OutputText, "output: text | json | jsonl | fasta")
	pf.Bool("no-header", false, "suppress header line in text output")
	pf.Bool("pretty", false, "styled tables and histograms (text output)")
	pf.String("log-level", "info", "log level: debug | info | warn | error")
	pf.BoolP("quiet", "q", false, "suppress non-essential warnings")
	pf.Int("width", 60, "FASTA line width (0 = single line)")

	root.AddCommand(
		newFormatCmd(s),
		newLengthCmd(s),
		newCompositionCmd(s),
		newCpGCmd(s),
		newComplementCmd(s),
		newSnipCmd(s),
		newTranslateCmd(s),
		newHeaderCmd(s),
		newPeriodicityCmd(s),
		newRatioCmd(s),
		newCompareCmd(s),
	)
	return root
}

// argsRange wraps cobra.RangeArgs so arity errors read as usage errors.
func argsRange(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(min, max)(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

// inputPath is the i-th positional argument, or "-" (stdin) when absent.
func inputPath(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return "-"
}
