// core/fasta/read.go
package fasta

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// ReadText reads the whole input at path ("-" for stdin, gzip detected) as
// text. Cancellation via ctx is honored between lines.
func ReadText(ctx context.Context, path string) (string, error) {
	rc, err := openReader(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var b strings.Builder
	br := bufio.NewReaderSize(rc, 64*1024)
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		line, err := br.ReadString('\n')
		b.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
	}
	return b.String(), nil
}

// SplitFirst keeps only the first FASTA record of text and reports how many
// further records were dropped. Text that does not start with '>' is
// returned unchanged.
func SplitFirst(text string) (first string, dropped int) {
	if !strings.HasPrefix(text, ">") {
		return text, 0
	}
	cut := -1
	for i := strings.Index(text, "\n>"); i >= 0; {
		if cut < 0 {
			cut = i + 1
		}
		dropped++
		j := strings.Index(text[i+2:], "\n>")
		if j < 0 {
			break
		}
		i += 2 + j
	}
	if cut < 0 {
		return text, 0
	}
	return text[:cut], dropped
}
