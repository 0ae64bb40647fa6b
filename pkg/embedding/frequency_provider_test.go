package embedding

import (
	"context"
	"testing"
)

func TestFrequencyProviderEmbed(t *testing.T) {
	p := NewFrequencyProvider()

	vec, err := p.Embed(context.Background(), "The cat sat on the mat.")
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if !vec.IsSparse() {
		t.Fatal("frequency embedding should be sparse")
	}

	want := map[string]float64{
		"the": 2,
		"cat": 1,
		"sat": 1,
		"mat": 1,
	}
	if len(vec.Sparse) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(vec.Sparse), len(want), vec.Sparse)
	}
	for token, count := range want {
		if vec.Sparse[token] != count {
			t.Errorf("count[%q] = %v, want %v", token, vec.Sparse[token], count)
		}
	}
}

func TestFrequencyProviderDropsShortTokens(t *testing.T) {
	p := NewFrequencyProvider()

	vec, _ := p.Embed(context.Background(), "a an on it dog")
	if len(vec.Sparse) != 1 {
		t.Fatalf("token count = %d, want 1 (%v)", len(vec.Sparse), vec.Sparse)
	}
	if vec.Sparse["dog"] != 1 {
		t.Errorf("count[dog] = %v, want 1", vec.Sparse["dog"])
	}
}

func TestFrequencyProviderStripsPunctuation(t *testing.T) {
	p := NewFrequencyProvider()

	vec, _ := p.Embed(context.Background(), "Hello, world! (Again)")
	for _, token := range []string{"hello", "world", "again"} {
		if vec.Sparse[token] != 1 {
			t.Errorf("count[%q] = %v, want 1", token, vec.Sparse[token])
		}
	}
}

func TestFrequencyProviderSimilarTextsRankCloser(t *testing.T) {
	p := NewFrequencyProvider()
	ctx := context.Background()

	query, _ := p.Embed(ctx, "What is the capital of France?")
	related, _ := p.Embed(ctx, "The capital of France is Paris.")
	unrelated, _ := p.Embed(ctx, "Bananas ripen faster in warm kitchens.")

	if Cosine(query, related) <= Cosine(query, unrelated) {
		t.Error("related text should score higher than unrelated text")
	}
}
