package counsel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"aspirebot-backend/internal/llm"
	"aspirebot-backend/internal/shared/telemetry"
)

const defaultCallTimeout = 60 * time.Second

// Service fans one prompt out to every configured provider concurrently and
// parses each reply independently. One provider failing never disturbs the
// others.
type Service struct {
	providers   []llm.Generator
	callTimeout time.Duration
}

// NewService constructs a Service. A non-positive timeout falls back to the
// default per-call limit.
func NewService(providers []llm.Generator, callTimeout time.Duration) *Service {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &Service{providers: providers, callTimeout: callTimeout}
}

// Counsel renders the prompt once, calls every provider concurrently and
// returns one entry per provider. The error return covers request-level
// problems only (bad input, no providers); per-provider failures land in the
// corresponding ProviderResult.
func (s *Service) Counsel(ctx context.Context, pc PromptContext, requestID string) (CombinedResult, error) {
	if len(s.providers) == 0 {
		return nil, ErrNoProviders
	}
	if err := pc.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(pc)
	results := make([]ProviderResult, len(s.providers))

	g, groupCtx := errgroup.WithContext(ctx)
	for i, provider := range s.providers {
		i, provider := i, provider
		g.Go(func() error {
			results[i] = s.callOne(groupCtx, provider, prompt, requestID)
			// Branch failures are recorded, never propagated: returning an
			// error here would cancel the sibling providers.
			return nil
		})
	}
	_ = g.Wait()

	combined := make(CombinedResult, len(s.providers))
	for i, provider := range s.providers {
		combined[provider.Name()] = results[i]
	}
	return combined, nil
}

func (s *Service) callOne(ctx context.Context, provider llm.Generator, prompt, requestID string) ProviderResult {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	gen := newRetryingGenerator(provider, requestID)
	text, err := gen.Generate(callCtx, prompt)
	if err != nil {
		telemetry.Error("counsel.provider_failed", map[string]any{
			"provider":   provider.Name(),
			"request_id": requestID,
			"error":      err.Error(),
		})
		return ProviderResult{Err: err}
	}

	rec, parseErr := Parse(text)
	if parseErr != nil {
		// The error record still serves the client; log so the raw shape
		// failure is visible.
		telemetry.Error("counsel.parse_failed", map[string]any{
			"provider":   provider.Name(),
			"request_id": requestID,
			"error":      parseErr.Error(),
		})
	}
	return ProviderResult{Recommendation: rec}
}
