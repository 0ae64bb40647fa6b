package factory

import (
	"fmt"
	"time"

	"ai-pdfchat-be/pkg/llm"
	"ai-pdfchat-be/pkg/llm/gemini"
	"ai-pdfchat-be/pkg/llm/huggingface"
)

// ProviderConfig describes one element of the generation chain.
type ProviderConfig struct {
	Type    string // "gemini" or "huggingface"
	APIKey  string
	Model   string
	BaseURL string
}

func NewProvider(cfg ProviderConfig, timeout time.Duration) (llm.Provider, error) {
	switch cfg.Type {
	case "gemini":
		return gemini.NewGeminiProvider(cfg.APIKey, cfg.Model, timeout), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Type)
	}
}

// NewProviderChain assembles the ordered provider list. Providers that fail
// to construct are skipped so a missing key disables one backend, not the app.
func NewProviderChain(configs []ProviderConfig, timeout time.Duration) []llm.Provider {
	providers := make([]llm.Provider, 0, len(configs))
	for _, cfg := range configs {
		provider, err := NewProvider(cfg, timeout)
		if err != nil {
			continue
		}
		providers = append(providers, provider)
	}
	return providers
}
