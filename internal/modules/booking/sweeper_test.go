// README: Sweeper lifecycle test.
package booking

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestSweeperStopsOnCancel(t *testing.T) {
	sweeper := NewSweeper(NewService(nil), time.Hour, 30*time.Minute, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancellation")
	}
}
