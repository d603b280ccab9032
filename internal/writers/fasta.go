// internal/writers/fasta.go
package writers

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"napoop/pkg/api"
)

func init() { Register("fasta", writeFASTA) }

// writeFASTA emits sequence-bearing results as one FASTA record each.
func writeFASTA(w io.Writer, v any, o Options) error {
	var (
		id, desc, letters string
		alpha             alphabet.Alphabet = alphabet.DNAredundant
	)
	switch r := v.(type) {
	case api.SequenceV1:
		id, letters = r.Definition, r.Sequence
		if r.Operation != "header" {
			desc = strings.TrimSpace(r.Operation + " " + r.Region)
		}
	case api.TranslationV1:
		id, letters = r.Definition, r.Protein
		desc = fmt.Sprintf("frame %d", r.Frame)
		alpha = alphabet.Protein
	default:
		return fmt.Errorf("fasta: %w for %T", ErrUnsupported, v)
	}

	s := linear.NewSeq(id, alphabet.BytesToLetters([]byte(letters)), alpha)
	s.Desc = desc
	width := o.Width
	if width <= 0 {
		width = len(letters) + 1
	}
	var buf bytes.Buffer
	if _, err := fasta.NewWriter(&buf, width).Write(s); err != nil {
		return err
	}
	// one record per call, always newline-terminated
	_, err := io.WriteString(w, strings.TrimRight(buf.String(), "\n")+"\n")
	return err
}
