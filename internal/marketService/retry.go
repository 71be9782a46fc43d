package market

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-market/internal/marketerrors"
	"auction-market/utils"
)

// retryRead runs fn up to attempts times with a fixed delay in between.
// Only reads go through here; writes are never retried.
func retryRead(ctx context.Context, attempts int, delay time.Duration, op string, fn func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if isPermanent(err) {
			return err
		}

		utils.Warn("service: chain read failed", map[string]any{
			"op":           op,
			"attempt":      attempt,
			"max_attempts": attempts,
			"error":        err.Error(),
		})
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w (last error: %v)", op, ctx.Err(), err)
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%s: giving up after %d attempts: %w", op, attempts, err)
}

func isPermanent(err error) bool {
	return errors.Is(err, marketerrors.ErrAuctionNotFound) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
