// Package gemini adapts the Google Gen AI SDK to ai_model.AiModel.
package gemini

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"llmChat/internal/ai_model"

	"google.golang.org/genai"
)

// DefaultModel is Gemini 2.5 Flash.
const DefaultModel = "gemini-2.5-flash"

type Option func(*genai.ClientConfig)

func WithHTTPClient(c *http.Client) Option {
	return func(cc *genai.ClientConfig) { cc.HTTPClient = c }
}

func WithBaseURL(u string) Option {
	return func(cc *genai.ClientConfig) { cc.HTTPOptions.BaseURL = u }
}

type AiModelGemini struct {
	client *genai.Client
	model  string
}

// NewAiModelGemini builds a Gemini API client. The key is passed explicitly;
// nothing is read from or written to the process environment.
func NewAiModelGemini(ctx context.Context, apiKey, model string, opts ...Option) (*AiModelGemini, error) {
	if model == "" {
		model = DefaultModel
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cc)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &AiModelGemini{client: client, model: model}, nil
}

func (a *AiModelGemini) Name() string {
	return ai_model.ProviderGemini + "/" + a.model
}

func (a *AiModelGemini) Generate(ctx context.Context, prompt string) (string, error) {
	log.Printf("[AiModelGemini.Generate] model=%s prompt bytes=%d", a.model, len(prompt))

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		log.Println("[AiModelGemini.Generate] request failed:", err)
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		log.Println("[AiModelGemini.Generate] no candidates in response")
		return "", ai_model.ErrEmptyReply
	}

	reply := resp.Text()
	log.Printf("[AiModelGemini.Generate] reply bytes=%d", len(reply))
	return reply, nil
}
