package response

import (
	"fmt"
	"strings"
)

// RuleBasedResponder is the terminal element of the answer chain. It is
// deterministic and never fails, which makes the chain as a whole total.
type RuleBasedResponder struct{}

func NewRuleBasedResponder() *RuleBasedResponder {
	return &RuleBasedResponder{}
}

func (r *RuleBasedResponder) Name() string {
	return "rulebased"
}

func (r *RuleBasedResponder) Respond(query, context string) string {
	lower := strings.ToLower(query)

	switch {
	case containsAny(lower, "hello", "hi", "hey"):
		return MsgGreeting
	case strings.Contains(lower, "thank"):
		return MsgThanks
	case strings.Contains(lower, "what") && strings.Contains(lower, "this") && strings.Contains(lower, "about"):
		return MsgDocumentAck
	case context != "":
		return fmt.Sprintf(
			"Based on your document, I can see this is about: %s\n\nCould you ask a more specific question about this content?",
			contextPreview(context),
		)
	default:
		return MsgNoContext
	}
}

// contextPreview takes the first one or two sentences of the context.
func contextPreview(context string) string {
	sentences := strings.Split(context, ".")
	take := 2
	if len(sentences) < take {
		take = len(sentences)
	}
	preview := strings.Join(sentences[:take], ".")
	if len(sentences) > take {
		preview += "..."
	}
	return preview
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
