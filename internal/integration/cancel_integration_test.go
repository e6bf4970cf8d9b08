// internal/integration/cancel_integration_test.go
package integration

import (
	"context"
	"io"
	"testing"

	"primesieve/internal/app"
	"primesieve/internal/listapp"
)

func TestCancelledContextExit130(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := app.RunContext(ctx, []string{"1000000"}, io.Discard, io.Discard); code != 130 {
		t.Errorf("primecheck exit = %d, want 130", code)
	}
	if code := listapp.RunContext(ctx, []string{"1000000"}, io.Discard, io.Discard); code != 130 {
		t.Errorf("primelist exit = %d, want 130", code)
	}
}
