// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"napoop/internal/cli"
	"napoop/internal/writers"
)

// Exit codes
const (
	ExitOK       = 0
	ExitMismatch = 1
	ExitUsage    = 2
	ExitOutput   = 3
	ExitCanceled = 130
)

// RunContext executes one napoop invocation and returns its exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	root := cli.NewRootCmd(outw, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(parent)

	if ferr := outw.Flush(); ferr != nil && err == nil {
		if writers.IsBrokenPipe(ferr) {
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, "error:", ferr)
		return ExitOutput
	}
	return exitCode(err, stderr)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	var oe *cli.OutputError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, cli.ErrMismatch):
		return ExitMismatch
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.As(err, &oe):
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitOutput
	default:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
}
