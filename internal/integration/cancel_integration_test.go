package integration

import (
	"context"
	"io"
	"strings"
	"testing"

	"napoop/internal/app"
)

func TestCanceledContextExit130(t *testing.T) {
	fn := write(t, "big.fa", ">chr1\n"+strings.Repeat("ACGTACGTAC\n", 1<<14))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"composition", fn}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
