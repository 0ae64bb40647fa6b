package embedding

import (
	"context"
	"strings"
)

// FrequencyProvider produces sparse term-frequency embeddings. It is
// deterministic, needs no network access and never fails, which makes it the
// terminal element of every provider chain.
type FrequencyProvider struct{}

func NewFrequencyProvider() *FrequencyProvider {
	return &FrequencyProvider{}
}

func (p *FrequencyProvider) Name() string {
	return "frequency"
}

func (p *FrequencyProvider) Embed(_ context.Context, text string) (Vector, error) {
	counts := make(map[string]float64)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		token := normalizeToken(word)
		if len(token) > 2 {
			counts[token]++
		}
	}
	return NewSparse(counts), nil
}

// normalizeToken strips everything except lowercase letters and digits.
func normalizeToken(word string) string {
	var b strings.Builder
	for _, r := range word {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
