package response

import (
	"context"
	"errors"
	"testing"

	"ai-pdfchat-be/pkg/llm"
)

type stubProvider struct {
	name   string
	answer string
	err    error
	calls  int
}

func (s *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.answer, s.err
}

func (s *stubProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	s.calls++
	return s.answer, s.err
}

func (s *stubProvider) Name() string {
	return s.name
}

func providerError(name string, kind llm.ErrorKind) error {
	return &llm.ProviderError{Provider: name, Kind: kind, Err: errors.New("boom")}
}

func TestGeneratorFirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "first", answer: "from first"}
	second := &stubProvider{name: "second", answer: "from second"}
	g := NewGenerator([]llm.Provider{first, second}, nil)

	got := g.Answer(context.Background(), "question", "context")
	if got != "from first" {
		t.Errorf("Answer() = %q, want %q", got, "from first")
	}
	if second.calls != 0 {
		t.Errorf("second provider called %d times, want 0", second.calls)
	}
}

func TestGeneratorFallsThroughOnFailure(t *testing.T) {
	first := &stubProvider{name: "first", err: providerError("first", llm.ErrKindTransport)}
	second := &stubProvider{name: "second", answer: "from second"}
	g := NewGenerator([]llm.Provider{first, second}, nil)

	got := g.Answer(context.Background(), "question", "context")
	if got != "from second" {
		t.Errorf("Answer() = %q, want %q", got, "from second")
	}
}

func TestGeneratorSkipsEmptyAnswers(t *testing.T) {
	first := &stubProvider{name: "first", answer: "   "}
	second := &stubProvider{name: "second", answer: "real answer"}
	g := NewGenerator([]llm.Provider{first, second}, nil)

	got := g.Answer(context.Background(), "question", "")
	if got != "real answer" {
		t.Errorf("Answer() = %q, want %q", got, "real answer")
	}
}

func TestGeneratorDegradationMessages(t *testing.T) {
	tests := []struct {
		name string
		kind llm.ErrorKind
		want string
	}{
		{"quota", llm.ErrKindQuota, MsgQuotaExceeded},
		{"auth", llm.ErrKindAuth, MsgAuthError},
		{"config", llm.ErrKindConfig, MsgAuthError},
		{"unavailable", llm.ErrKindUnavailable, MsgModelUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &stubProvider{name: "p", err: providerError("p", tt.kind)}
			g := NewGenerator([]llm.Provider{p}, nil)

			got := g.Answer(context.Background(), "some question", "")
			if got != tt.want {
				t.Errorf("Answer() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGeneratorQuotaOutranksUnavailable(t *testing.T) {
	first := &stubProvider{name: "first", err: providerError("first", llm.ErrKindUnavailable)}
	second := &stubProvider{name: "second", err: providerError("second", llm.ErrKindQuota)}
	g := NewGenerator([]llm.Provider{first, second}, nil)

	got := g.Answer(context.Background(), "some question", "")
	if got != MsgQuotaExceeded {
		t.Errorf("Answer() = %q, want quota message", got)
	}
}

func TestGeneratorTransportFailuresFallBackToRules(t *testing.T) {
	first := &stubProvider{name: "first", err: providerError("first", llm.ErrKindTransport)}
	second := &stubProvider{name: "second", err: providerError("second", llm.ErrKindTimeout)}
	g := NewGenerator([]llm.Provider{first, second}, nil)

	got := g.Answer(context.Background(), "hello", "")
	if got != MsgGreeting {
		t.Errorf("Answer() = %q, want rule-based greeting", got)
	}
}

func TestGeneratorAlwaysAnswers(t *testing.T) {
	// No providers at all: the rule-based terminal still answers.
	g := NewGenerator(nil, nil)

	got := g.Answer(context.Background(), "anything at all", "")
	if got == "" {
		t.Error("Answer() returned empty string")
	}
}
