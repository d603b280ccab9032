package cli

import (
	"context"
	"errors"
	"fmt"

	"napoop-core/fasta"
	"napoop-core/record"
	"napoop/internal/writers"
)

// load reads path and parses its first record. Parser diagnostics and
// dropped FASTA records are logged, never fatal.
func (s *session) load(ctx context.Context, path string) (*record.Record, record.Warning, error) {
	text, err := fasta.ReadText(ctx, path)
	if err != nil {
		return nil, record.NoWarning, err
	}
	first, dropped := fasta.SplitFirst(text)
	if dropped > 0 {
		s.log.Warn("multiple FASTA records; only the first is used", "input", path, "dropped", dropped)
	}
	rec, w, err := s.parser.Parse(first)
	if err != nil {
		return nil, record.NoWarning, fmt.Errorf("%s: %w", path, err)
	}
	if w != record.NoWarning {
		s.log.Warn(w.String(), "input", path, "definition", rec.Definition(), "format", rec.Format().String())
	}
	s.log.Debug("parsed record", "input", path, "format", rec.Format().String(), "definition", rec.Definition(), "length", rec.Len())
	return rec, w, nil
}

func (s *session) options() writers.Options {
	return writers.Options{Header: !s.cfg.NoHeader, Pretty: s.cfg.Pretty, Width: s.cfg.Width}
}

// emit writes results in the configured output format.
func (s *session) emit(items ...any) error {
	return s.emitAs(s.cfg.Output, items...)
}

func (s *session) emitAs(format string, items ...any) error {
	if err := writers.WriteAll(format, s.stdout, s.options(), items...); err != nil {
		if errors.Is(err, writers.ErrUnsupported) {
			return &UsageError{Err: err}
		}
		return &OutputError{Err: err}
	}
	return nil
}
