package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type geminiRequestContentPart struct {
	Text string `json:"text"`
}

type geminiRequestContent struct {
	Parts []geminiRequestContentPart `json:"parts"`
}

type geminiRequest struct {
	Model    string               `json:"model"`
	Content  geminiRequestContent `json:"content"`
	TaskType string               `json:"task_type,omitempty"`
}

type geminiResponseEmbedding struct {
	Values []float32 `json:"values"`
}

type geminiResponse struct {
	Embedding geminiResponseEmbedding `json:"embedding"`
}

// GeminiProvider generates dense embeddings via the Gemini embedContent API.
type GeminiProvider struct {
	apiKey string
	model  string
	client *http.Client
}

func NewGeminiProvider(apiKey string, timeout time.Duration) *GeminiProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &GeminiProvider{
		apiKey: apiKey,
		model:  "text-embedding-004",
		client: &http.Client{Timeout: timeout},
	}
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Embed(ctx context.Context, text string) (Vector, error) {
	if p.apiKey == "" {
		return Vector{}, &ProviderError{Provider: p.Name(), Err: fmt.Errorf("api key not configured")}
	}

	reqBody := geminiRequest{
		Model: p.model,
		Content: geminiRequestContent{
			Parts: []geminiRequestContentPart{{Text: text}},
		},
		TaskType: "RETRIEVAL_DOCUMENT",
	}
	reqJson, err := json.Marshal(reqBody)
	if err != nil {
		return Vector{}, &ProviderError{Provider: p.Name(), Err: err}
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:embedContent",
		p.model,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqJson))
	if err != nil {
		return Vector{}, &ProviderError{Provider: p.Name(), Err: err}
	}
	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return Vector{}, &ProviderError{Provider: p.Name(), Err: err}
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return Vector{}, &ProviderError{Provider: p.Name(), Err: err}
	}

	if res.StatusCode != http.StatusOK {
		return Vector{}, &ProviderError{
			Provider: p.Name(),
			Err:      fmt.Errorf("unexpected status %d, body %s", res.StatusCode, string(resByte)),
		}
	}

	var resEmbedding geminiResponse
	if err := json.Unmarshal(resByte, &resEmbedding); err != nil {
		return Vector{}, &ProviderError{Provider: p.Name(), Err: err}
	}
	if len(resEmbedding.Embedding.Values) == 0 {
		return Vector{}, &ProviderError{Provider: p.Name(), Err: fmt.Errorf("empty embedding in response")}
	}

	return NewDense(resEmbedding.Embedding.Values), nil
}
