package embedding

import (
	"context"
	"fmt"
)

// Provider defines the contract for generating text embeddings
type Provider interface {
	// Embed converts text into its vector representation
	Embed(ctx context.Context, text string) (Vector, error)

	// Name returns the provider identifier used in logs and errors
	Name() string
}

// ProviderError wraps any transport or parse failure from a remote provider
// so the chain can treat all backends uniformly.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("embedding provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
