package response

import (
	"strings"
	"testing"
)

func TestRuleBasedRespond(t *testing.T) {
	r := NewRuleBasedResponder()

	tests := []struct {
		name    string
		query   string
		context string
		want    string
	}{
		{
			name:  "greeting",
			query: "Hello there",
			want:  MsgGreeting,
		},
		{
			name:  "greeting is substring based",
			query: "what is this about",
			// "this" contains "hi", so the greeting branch wins. This
			// mirrors the documented matching behavior.
			want: MsgGreeting,
		},
		{
			name:  "thanks",
			query: "ok, thanks a lot",
			want:  MsgThanks,
		},
		{
			name:  "no context",
			query: "tell me more",
			want:  MsgNoContext,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Respond(tt.query, tt.context)
			if got != tt.want {
				t.Errorf("Respond() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuleBasedRespondWithContext(t *testing.T) {
	r := NewRuleBasedResponder()

	got := r.Respond("summarize please", "First sentence. Second sentence. Third sentence.")

	want := "Based on your document, I can see this is about: First sentence. Second sentence...\n\nCould you ask a more specific question about this content?"
	if got != want {
		t.Errorf("Respond() = %q, want %q", got, want)
	}
}

func TestRuleBasedRespondShortContextNoEllipsis(t *testing.T) {
	r := NewRuleBasedResponder()

	got := r.Respond("summarize please", "Only one sentence")
	if strings.Contains(got, "...") {
		t.Errorf("short context should not be elided: %q", got)
	}
	if !strings.Contains(got, "Only one sentence") {
		t.Errorf("context preview missing: %q", got)
	}
}

func TestRuleBasedRespondNeverEmpty(t *testing.T) {
	r := NewRuleBasedResponder()

	queries := []string{"", "zzz", "random question", "why", "??"}
	for _, q := range queries {
		if r.Respond(q, "") == "" {
			t.Errorf("Respond(%q, \"\") returned empty string", q)
		}
	}
}
