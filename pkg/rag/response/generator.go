package response

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-pdfchat-be/pkg/llm"
)

// Generator runs the answer fallback chain: every configured LLM provider is
// tried at most once, in priority order, and the rule-based responder closes
// the chain so a non-empty answer always comes back.
type Generator struct {
	providers []llm.Provider
	fallback  *RuleBasedResponder
	logger    *log.Logger
}

func NewGenerator(providers []llm.Provider, logger *log.Logger) *Generator {
	return &Generator{
		providers: providers,
		fallback:  NewRuleBasedResponder(),
		logger:    logger,
	}
}

// Answer produces the reply for a query with its retrieved context.
// It never returns an error: provider failures fall through the chain, and
// the most actionable degradation (quota, auth, model missing) is reported
// as a distinct message once every provider has been tried.
func (g *Generator) Answer(ctx context.Context, query, ragContext string) string {
	prompt := buildPrompt(query, ragContext)

	var worst *llm.ProviderError
	for _, provider := range g.providers {
		answer, err := provider.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(answer) != "" {
			return answer
		}
		if err == nil {
			err = &llm.ProviderError{Provider: provider.Name(), Kind: llm.ErrKindBadOutput, Err: fmt.Errorf("empty answer")}
		}
		if g.logger != nil {
			g.logger.Printf("[WARN] answer provider %s failed, trying next: %v", provider.Name(), err)
		}
		if pe, ok := llm.AsProviderError(err); ok {
			worst = moreActionable(worst, pe)
		}
	}

	if msg := degradationMessage(worst); msg != "" {
		return msg
	}
	return g.fallback.Respond(query, ragContext)
}

func buildPrompt(query, ragContext string) string {
	if ragContext != "" {
		return fmt.Sprintf("Based on the following context: %s\n\nAnswer this question: %s", ragContext, query)
	}
	return fmt.Sprintf("Please answer this question: %s", query)
}

// degradationMessage maps operator-actionable failure kinds to user-facing
// strings. Transport-level failures stay silent and let the rule-based
// responder answer instead.
func degradationMessage(pe *llm.ProviderError) string {
	if pe == nil {
		return ""
	}
	switch pe.Kind {
	case llm.ErrKindQuota:
		return MsgQuotaExceeded
	case llm.ErrKindAuth, llm.ErrKindConfig:
		return MsgAuthError
	case llm.ErrKindUnavailable:
		return MsgModelUnavailable
	default:
		return ""
	}
}

// moreActionable keeps the degradation the operator most needs to hear about.
func moreActionable(current, candidate *llm.ProviderError) *llm.ProviderError {
	if candidate == nil {
		return current
	}
	if current == nil || kindPriority(candidate.Kind) > kindPriority(current.Kind) {
		return candidate
	}
	return current
}

func kindPriority(kind llm.ErrorKind) int {
	switch kind {
	case llm.ErrKindQuota:
		return 3
	case llm.ErrKindAuth, llm.ErrKindConfig:
		return 2
	case llm.ErrKindUnavailable:
		return 1
	default:
		return 0
	}
}
