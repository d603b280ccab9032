// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"

	"napoop/internal/jsonlutil"
	"napoop/internal/jsonutil"
)

// ErrUnsupported is wrapped by writers asked to render a result their
// format cannot represent.
var ErrUnsupported = errors.New("output format not available")

// Options control presentation of text output.
type Options struct {
	Header bool // tabular header line
	Pretty bool // styled tables instead of TSV
	Width  int  // FASTA line width (0 = single line)
}

// Func writes one result value in a given format.
type Func func(w io.Writer, v any, o Options) error

// Result writers (format → handler). Register in init() blocks of each format file.
// json and jsonl are whole-list encodings handled by WriteAll.
var ResultWriters = map[string]Func{}

// Register installs fn for format (idempotent last-wins).
func Register(format string, fn Func) { ResultWriters[format] = fn }

// Write dispatches one value to the writer registered for format.
func Write(format string, w io.Writer, v any, o Options) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown result format %q (no writer registered)", format)
	}
	return fn(w, v, o)
}

// WriteAll writes a homogeneous list of results. JSON emits a single value
// (an array only when there is more than one item), JSONL one line per item,
// text prints its header before the first item only.
func WriteAll(format string, w io.Writer, o Options, items ...any) error {
	switch format {
	case "json":
		if len(items) == 1 {
			return jsonutil.EncodePretty(w, items[0])
		}
		return jsonutil.EncodePretty(w, items)
	case "jsonl":
		in, done := jsonlutil.Start[any](w, len(items), jsonlutil.EncodeAny, IsBrokenPipe)
		for _, v := range items {
			in <- v
		}
		close(in)
		return <-done
	}
	for i, v := range items {
		oi := o
		oi.Header = o.Header && i == 0
		if err := Write(format, w, v, oi); err != nil {
			return err
		}
	}
	return nil
}
