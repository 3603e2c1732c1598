package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"
)

// DefaultMaxAttempts bounds how often a command is run when it keeps losing
// optimistic-concurrency races.
const DefaultMaxAttempts = 3

type retryCounter interface {
	Inc()
}

// Retrier re-runs a unit of work that failed with errs.ErrConcurrentModification.
// Every other outcome, including precondition and conflict errors, is returned as is.
type Retrier struct {
	maxAttempts int
	retries     retryCounter
}

// NewRetrier creates a retrier; maxAttempts below 1 is treated as 1.
// retries may be nil.
func NewRetrier(maxAttempts int, retries retryCounter) Retrier {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return Retrier{maxAttempts: maxAttempts, retries: retries}
}

func (r Retrier) MaxAttempts() int {
	if r.maxAttempts < 1 {
		return 1
	}
	return r.maxAttempts
}

// Do calls fn until it succeeds, fails with a non-retryable error, the context is
// done or the attempts are exhausted. The last error is returned.
func (r Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= r.MaxAttempts(); attempt++ {
		err = fn(ctx)
		if err == nil || !errors.Is(err, errs.ErrConcurrentModification) || ctx.Err() != nil {
			return err
		}
		if attempt < r.MaxAttempts() && r.retries != nil {
			r.retries.Inc()
		}
	}
	return err
}
