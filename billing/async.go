package billing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

const asyncTimeout = 30 * time.Second

// safeAsync runs fn on its own goroutine with a bounded context and logs the outcome.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("background operation failed", "op", op, "error", err)
			return
		}
		rlog.Info("background operation finished", "op", op)
	}()
}
