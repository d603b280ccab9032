package record

import "fmt"

// UnknownFormatError is returned when the input matches none of the
// supported layouts. Input holds the offending text.
type UnknownFormatError struct {
	Input string
}

func (e *UnknownFormatError) Error() string {
	const max = 40
	s := e.Input
	if len(s) > max {
		s = s[:max] + "..."
	}
	return fmt.Sprintf("unknown sequence format: %q", s)
}
