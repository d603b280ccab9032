package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"napoop/internal/app"
)

// Main runs run with the process arguments and exits with its code.
// With no arguments, help is printed.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = app.ExitCanceled
	}

	stop()
	os.Exit(code)
}
