package llm

import (
	"context"
	"time"
)

// RetryPolicy configures the retry wrapper around provider calls. It is an
// explicit object so the policy lives in configuration, not inline in call
// sites.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy matches the provider behavior the service promises:
// one call plus two retries with exponential backoff.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 3,
	BaseDelay:   500 * time.Millisecond,
	MaxDelay:    5 * time.Second,
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultRetryPolicy.BaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = DefaultRetryPolicy.MaxDelay
	}
	return p
}

// Retry runs fn up to p.MaxAttempts times with exponential backoff between
// attempts. The context cancels both the waits and the attempts.
func Retry(ctx context.Context, p RetryPolicy, fn func(ctx context.Context) error) error {
	p = p.normalized()
	delay := p.BaseDelay
	var err error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
			if delay > p.MaxDelay {
				delay = p.MaxDelay
			}
		}
		if err = fn(ctx); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
	}
	return err
}

type retryingModel struct {
	inner   ChatModel
	policy  RetryPolicy
	timeout time.Duration
}

// WithRetry wraps a ChatModel so every Ask is bounded by a per-attempt timeout
// and retried per the policy.
func WithRetry(inner ChatModel, policy RetryPolicy, perAttemptTimeout time.Duration) ChatModel {
	return &retryingModel{inner: inner, policy: policy, timeout: perAttemptTimeout}
}

func (m *retryingModel) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var answer string
	err := Retry(ctx, m.policy, func(ctx context.Context) error {
		attemptCtx := ctx
		if m.timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, m.timeout)
			defer cancel()
		}
		var err error
		answer, err = m.inner.Ask(attemptCtx, systemPrompt, userPrompt)
		return err
	})
	return answer, err
}
