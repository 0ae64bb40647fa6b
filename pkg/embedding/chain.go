package embedding

import (
	"context"
	"fmt"
	"log"
)

// Chain tries providers in priority order and returns the first successful
// embedding. Constructed with NewFrequencyProvider as the last element the
// chain never fails, so one unreachable backend degrades a single chunk
// instead of aborting a whole upload.
type Chain struct {
	providers []Provider
	logger    *log.Logger
}

func NewChain(logger *log.Logger, providers ...Provider) *Chain {
	return &Chain{
		providers: providers,
		logger:    logger,
	}
}

func (c *Chain) Name() string {
	return "chain"
}

func (c *Chain) Embed(ctx context.Context, text string) (Vector, error) {
	var lastErr error
	for _, provider := range c.providers {
		vec, err := provider.Embed(ctx, text)
		if err == nil {
			return vec, nil
		}
		lastErr = err
		if c.logger != nil {
			c.logger.Printf("[WARN] embedding provider %s failed, trying next: %v", provider.Name(), err)
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no embedding providers configured")
	}
	return Vector{}, lastErr
}
