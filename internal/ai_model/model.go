package ai_model

import (
	"context"
	"errors"
)

const (
	ProviderGemini      = "gemini"
	ProviderAnthropic   = "anthropic"
	ProviderHuggingFace = "huggingface"
	ProviderYandex      = "yandex"
)

var (
	ErrEmptyReply      = errors.New("model returned no reply")
	ErrUnknownProvider = errors.New("unknown model provider")
)

// AiModel is a single-shot text completion against a remote model.
type AiModel interface {
	// Generate sends prompt as one user turn and returns the reply text.
	// There are no retries; provider and transport failures are returned as is.
	Generate(ctx context.Context, prompt string) (reply string, err error)
	Name() string
}

// KnownProvider reports whether name is one of the supported providers.
func KnownProvider(name string) bool {
	switch name {
	case ProviderGemini, ProviderAnthropic, ProviderHuggingFace, ProviderYandex:
		return true
	}
	return false
}
