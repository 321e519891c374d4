package search

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// failureKind classifies a search error for the retry loop.
type failureKind int

const (
	// fatal errors are returned immediately.
	fatal failureKind = iota
	// malformed bodies get a single extra attempt.
	malformed
	// transient covers rate limits, outages and network errors.
	transient
)

func classify(err error) failureKind {
	var (
		rejected *ErrRequestRejected
		invalid  *ErrInvalidResponse
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fatal
	case errors.As(err, &rejected):
		return fatal
	case errors.As(err, &invalid):
		return malformed
	default:
		return transient
	}
}

// RetryProvider retries transient leaderboard search failures with
// exponential backoff and jitter, honouring the graph's Retry-After.
type RetryProvider struct {
	inner  Provider
	cfg    RetryConfig
	logger *zap.Logger
}

// RetryOption customizes a RetryProvider.
type RetryOption func(*RetryProvider)

// WithRetryLogger logs each retry decision.
func WithRetryLogger(logger *zap.Logger) RetryOption {
	return func(r *RetryProvider) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRetry wraps a Provider with retry logic. At least one attempt is
// always made.
func WithRetry(p Provider, cfg RetryConfig, opts ...RetryOption) Provider {
	cfg.MaxAttempts = max(cfg.MaxAttempts, 1)
	r := &RetryProvider{inner: p, cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RetryProvider) Search(ctx context.Context, opts Options) (*Result, error) {
	seenMalformed := false
	for attempt := 1; ; attempt++ {
		res, err := r.inner.Search(ctx, opts)
		if err == nil {
			return res, nil
		}

		switch classify(err) {
		case fatal:
			return nil, err
		case malformed:
			if seenMalformed {
				return nil, err
			}
			seenMalformed = true
		}
		if attempt >= r.cfg.MaxAttempts {
			r.logger.Warn("leaderboard search retries exhausted",
				zap.String("provider", r.inner.Name()),
				zap.Int("attempts", attempt),
				zap.Error(err))
			return nil, err
		}

		wait := r.delay(attempt, err)
		r.logger.Info("retrying leaderboard search",
			zap.String("provider", r.inner.Name()),
			zap.String("purpose", PurposeFrom(ctx)),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *RetryProvider) Name() string {
	return r.inner.Name()
}

// delay is the pause after the given 1-based attempt. A Retry-After from
// the graph wins over the computed backoff.
func (r *RetryProvider) delay(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	base := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt-1))
	base = math.Min(base, float64(r.cfg.MaxWait))
	spread := base * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(base+spread, 0))
}
