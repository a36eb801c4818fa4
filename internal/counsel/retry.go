package counsel

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"aspirebot-backend/internal/llm"
	"aspirebot-backend/internal/shared/telemetry"
)

const retryBaseDelay = 300 * time.Millisecond

// retryingGenerator retries one transient failure before giving up. Permanent
// failures (bad key, malformed response) pass through untouched.
type retryingGenerator struct {
	base      llm.Generator
	requestID string
}

func newRetryingGenerator(base llm.Generator, requestID string) llm.Generator {
	if base == nil {
		return nil
	}
	return retryingGenerator{base: base, requestID: requestID}
}

func (r retryingGenerator) Name() string { return r.base.Name() }

func (r retryingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := r.base.Generate(ctx, prompt)
	if err == nil || !shouldRetry(err) {
		return text, err
	}
	// A dead context means the per-call budget is spent; a second attempt
	// would fail before it starts.
	if ctx.Err() != nil {
		return text, err
	}

	telemetry.Info("counsel.provider_retry", map[string]any{
		"provider":   r.base.Name(),
		"request_id": r.requestID,
		"error":      err.Error(),
	})
	select {
	case <-time.After(retryBaseDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return r.base.Generate(ctx, prompt)
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "client.timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}
