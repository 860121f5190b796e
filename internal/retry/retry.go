package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

type Config struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// Do runs fn up to Attempts times with exponential backoff and a little
// jitter, stopping early if ctx is cancelled while waiting.
func Do(ctx context.Context, config Config, fn func() error) error {
	attempts := config.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	delay := config.BaseDelay
	if delay <= 0 {
		delay = 200 * time.Millisecond
	}
	maxDelay := config.MaxDelay
	if maxDelay <= 0 {
		maxDelay = 2 * time.Second
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := fn(); err != nil {
			lastErr = err
			if attempt == attempts-1 {
				break
			}
			sleep := delay + time.Duration(rand.Int63n(int64(delay)/2+1))
			if sleep > maxDelay {
				sleep = maxDelay
			}
			timer := time.NewTimer(sleep)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			delay *= 2
			continue
		}
		return nil
	}
	return fmt.Errorf("retry failed: %w", lastErr)
}
