package warmup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/domain"
	"github.com/sethvargo/go-retry"
)

// DefaultDelay is how long a cold inference model gets before the single retry.
const DefaultDelay = 5 * time.Second

// ErrModelLoading marks a provider response (HTTP 503) that means the model is still starting.
var ErrModelLoading = fmt.Errorf("model is loading: %w", domain.ErrServiceUnavailable)

// Retry runs fn and, if it fails with ErrModelLoading, runs it once more after delay.
// Any other error is returned immediately.
func Retry(ctx context.Context, delay time.Duration, fn func(ctx context.Context) error) error {
	if delay <= 0 {
		delay = DefaultDelay
	}
	backoff := retry.WithMaxRetries(1, retry.NewConstant(delay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if errors.Is(err, ErrModelLoading) {
			return retry.RetryableError(err)
		}
		return err
	})
}
