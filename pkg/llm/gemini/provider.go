package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-pdfchat-be/pkg/llm"
)

type GeminiProvider struct {
	apiKey string
	model  string
	client *http.Client
}

type chatParts struct {
	Text string `json:"text"`
}

type chatContent struct {
	Parts []*chatParts `json:"parts"`
	Role  string       `json:"role"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
}

type chatRequest struct {
	Contents         []*chatContent    `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type chatCandidate struct {
	Content *chatContent `json:"content"`
}

type chatResponse struct {
	Candidates []*chatCandidate `json:"candidates"`
}

func NewGeminiProvider(apiKey, model string, timeout time.Duration) *GeminiProvider {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiProvider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if p.apiKey == "" {
		return "", &llm.ProviderError{
			Provider: p.Name(),
			Kind:     llm.ErrKindConfig,
			Err:      fmt.Errorf("api key not configured"),
		}
	}

	opts := &llm.Options{
		Model:       p.model,
		MaxTokens:   2048,
		Temperature: 0.7,
	}
	for _, o := range options {
		o(opts)
	}

	contents := make([]*chatContent, 0, len(history))
	for _, m := range history {
		role := m.Role
		// Gemini uses "model" where the rest of the system says "assistant"
		if role == "assistant" || role == "system" {
			role = "model"
		}
		contents = append(contents, &chatContent{
			Parts: []*chatParts{{Text: m.Content}},
			Role:  role,
		})
	}

	payload := chatRequest{
		Contents: contents,
		GenerationConfig: &generationConfig{
			MaxOutputTokens: opts.MaxTokens,
			Temperature:     opts.Temperature,
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", &llm.ProviderError{Provider: p.Name(), Kind: llm.ErrKindTransport, Err: err}
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:generateContent",
		opts.Model,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", &llm.ProviderError{Provider: p.Name(), Kind: llm.ErrKindTransport, Err: err}
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", &llm.ProviderError{Provider: p.Name(), Kind: llm.KindFromTransport(err), Err: err}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &llm.ProviderError{Provider: p.Name(), Kind: llm.ErrKindTransport, Err: err}
	}

	if res.StatusCode != http.StatusOK {
		return "", &llm.ProviderError{
			Provider: p.Name(),
			Kind:     llm.KindFromStatus(res.StatusCode),
			Err: fmt.Errorf(
				"status error, got status %d. with response body %s",
				res.StatusCode,
				string(resBody),
			),
		}
	}

	var geminiRes chatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", &llm.ProviderError{Provider: p.Name(), Kind: llm.ErrKindBadOutput, Err: err}
	}

	if len(geminiRes.Candidates) == 0 ||
		geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 ||
		geminiRes.Candidates[0].Content.Parts[0].Text == "" {
		return "", &llm.ProviderError{
			Provider: p.Name(),
			Kind:     llm.ErrKindBadOutput,
			Err:      fmt.Errorf("empty candidates in response"),
		}
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	messages := []llm.Message{
		{Role: "user", Content: prompt},
	}
	return p.Chat(ctx, messages, options...)
}
