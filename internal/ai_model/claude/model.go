package claude

import (
	"context"
	"fmt"
	"log"
	"strings"

	"llmChat/internal/ai_model"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	DefaultModel     = anthropic.ModelClaude3_7SonnetLatest
	defaultMaxTokens = int64(1024)
)

type AiModelAnthropic struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAiModelAnthropic returns a Messages API client authenticated with apiKey.
// SDK retries are disabled: a failed call is reported once.
func NewAiModelAnthropic(apiKey, model string, opts ...option.RequestOption) *AiModelAnthropic {
	m := anthropic.Model(model)
	if model == "" {
		m = DefaultModel
	}
	all := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	c := anthropic.NewClient(all...)
	return &AiModelAnthropic{client: &c, model: m, maxTokens: defaultMaxTokens}
}

func (a *AiModelAnthropic) Name() string {
	return ai_model.ProviderAnthropic + "/" + string(a.model)
}

func (a *AiModelAnthropic) Generate(ctx context.Context, prompt string) (string, error) {
	log.Printf("[AiModelAnthropic.Generate] model=%s prompt bytes=%d", a.model, len(prompt))

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.Println("[AiModelAnthropic.Generate] request failed:", err)
		return "", fmt.Errorf("anthropic: messages.new: %w", err)
	}

	var parts []string
	for _, b := range msg.Content {
		if tb, ok := b.AsAny().(anthropic.TextBlock); ok {
			parts = append(parts, tb.Text)
		}
	}
	if len(parts) == 0 {
		log.Println("[AiModelAnthropic.Generate] no text blocks in response")
		return "", ai_model.ErrEmptyReply
	}

	reply := strings.Join(parts, "\n")
	log.Printf("[AiModelAnthropic.Generate] reply bytes=%d", len(reply))
	return reply, nil
}
