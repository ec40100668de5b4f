package ai_model

import (
	"context"
	"time"
)

type timeoutModel struct {
	AiModel
	timeout time.Duration
}

// WithTimeout bounds every Generate call of m by d. A non-positive d returns m
// unchanged, so calls may wait indefinitely.
func WithTimeout(m AiModel, d time.Duration) AiModel {
	if d <= 0 {
		return m
	}
	return &timeoutModel{AiModel: m, timeout: d}
}

func (t *timeoutModel) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.AiModel.Generate(ctx, prompt)
}
