package completion

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// RetryConfig bounds the retry decorator.
type RetryConfig struct {
	// MaxAttempts counts the first call; 1 disables retries.
	MaxAttempts int
	BaseBackoff time.Duration
	MaxInterval time.Duration
	Logger      zerolog.Logger
}

type retrying struct {
	next Service
	cfg  RetryConfig
}

// Retrying wraps next so transport failures and temporary API errors are retried
// with exponential backoff.
func Retrying(next Service, cfg RetryConfig) Service {
	if cfg.MaxAttempts <= 1 {
		return next
	}
	return &retrying{next: next, cfg: cfg}
}

func (r *retrying) Complete(ctx context.Context, req Request) (string, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = r.cfg.MaxInterval
	exp.MaxElapsedTime = 0
	exp.Reset()

	attempts := 0
	op := func() (string, error) {
		attempts++
		text, err := r.next.Complete(ctx, req)
		if err == nil {
			return text, nil
		}
		if !isRetryable(err) {
			return "", backoff.Permanent(err)
		}
		r.cfg.Logger.Warn().Err(err).Int("attempt", attempts).Msg("completion failed, retrying")
		return "", err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(r.cfg.MaxAttempts-1)), ctx)
	return backoff.RetryWithData(op, policy)
}
