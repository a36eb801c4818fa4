package llm

import (
	"context"
	"fmt"
)

// Generator abstracts a generative-text provider. Implementations return the
// raw text payload for a prompt; they never interpret or structure it.
type Generator interface {
	// Name identifies the provider (e.g. "cohere", "gemini").
	Name() string
	// Generate performs one provider call and returns the raw response text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderCallError reports that a provider produced no text at all: a
// transport failure, a non-success status, or a response missing the
// expected text field. It is distinct from a parse failure downstream.
type ProviderCallError struct {
	Provider string
	Err      error
}

func (e *ProviderCallError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Provider, e.Err)
}

func (e *ProviderCallError) Unwrap() error {
	return e.Err
}

// CallError wraps err as a ProviderCallError for the named provider.
func CallError(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderCallError{Provider: provider, Err: err}
}
