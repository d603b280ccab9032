package cli

import "errors"

// ErrMismatch is returned by compare when the sequences differ. The result
// has already been written; callers map it to exit status 1.
var ErrMismatch = errors.New("sequences differ")

// UsageError wraps bad flags, arguments, or settings.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// OutputError wraps failures writing results.
type OutputError struct{ Err error }

func (e *OutputError) Error() string { return "write output: " + e.Err.Error() }
func (e *OutputError) Unwrap() error { return e.Err }
