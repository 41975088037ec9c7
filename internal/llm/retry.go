package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryProvider decorates a Provider with exponential backoff on transient
// failures. Schema-validation failures get exactly one extra attempt;
// configuration-shaped failures (truncation, cancelled context) none.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p so transient errors are retried up to cfg.MaxAttempts
// total attempts.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	invalidBudget := 1

	var err error
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		var invalid *ErrInvalidResponse
		if errors.As(err, &invalid) {
			if invalidBudget == 0 {
				return nil, err
			}
			invalidBudget--
		} else if !transient(err) {
			return nil, err
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		if sleepErr := r.sleep(ctx, attempt, err); sleepErr != nil {
			return nil, sleepErr
		}
	}
	return nil, err
}

// transient reports whether the error is worth another attempt.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return false
	}
	// Rate limits, 5xx and unclassified transport errors all qualify.
	return true
}

// sleep waits out the backoff for the given attempt, honoring both the
// server-suggested Retry-After and context cancellation.
func (r *retryProvider) sleep(ctx context.Context, attempt int, err error) error {
	wait := r.cfg.InitialWait
	for i := 0; i < attempt; i++ {
		wait = time.Duration(float64(wait) * r.cfg.Multiplier)
		if wait >= r.cfg.MaxWait {
			wait = r.cfg.MaxWait
			break
		}
	}

	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		wait = limited.RetryAfter
	} else {
		// Full jitter on the upper half keeps concurrent callers spread out.
		half := wait / 2
		wait = half + rand.N(half+1)
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
