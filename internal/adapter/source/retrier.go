package source

import (
	"context"
	"errors"
	"os"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// Retrier implements usecase.Retrier for file reads with exponential backoff.
type Retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          zerolog.Logger
}

// NewRetrier creates a new file read retrier.
func NewRetrier(maxRetries int, logger zerolog.Logger) *Retrier {
	return &Retrier{
		maxRetries:      maxRetries,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     2 * time.Second,
		maxElapsedTime:  15 * time.Second,
		logger:          logger,
	}
}

// Retry executes an operation with exponential backoff on transient I/O errors.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	retryCount := 0

	return backoff.Retry(func() error {
		err := operation()
		if err == nil {
			return nil
		}

		if !isRetryableError(err) {
			return backoff.Permanent(err)
		}

		retryCount++
		if retryCount > r.maxRetries {
			return backoff.Permanent(err)
		}

		r.logger.Warn().
			Err(err).
			Int("retry", retryCount).
			Msg("transient read error, retrying")

		return err
	}, backoff.WithContext(b, ctx))
}

// isRetryableError reports errors a network or removable file system may
// resolve by itself.
func isRetryableError(err error) bool {
	if os.IsTimeout(err) {
		return true
	}
	for _, errno := range []syscall.Errno{syscall.EAGAIN, syscall.EINTR, syscall.EIO, syscall.EBUSY} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
