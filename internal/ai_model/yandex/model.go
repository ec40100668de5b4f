package yandex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"llmChat/internal/ai_model"
)

const url = "https://llm.api.cloud.yandex.net/foundationModels/v1/completion"

const (
	DefaultModel     = "yandexgpt-5-lite/latest"
	modelTemperature = 0.3
	maxTokens        = 2000
)

var ErrNoFolder = errors.New("yandex: folder id is required")

type AiModelYandex struct {
	ApiKey   string
	FolderID string
	Model    string
	URL      string
	Client   *http.Client
}

func NewAiModelYandex(apiKey, folderID, model string) (*AiModelYandex, error) {
	if folderID == "" {
		return nil, ErrNoFolder
	}
	if model == "" {
		model = DefaultModel
	}
	return &AiModelYandex{
		ApiKey:   apiKey,
		FolderID: folderID,
		Model:    model,
		URL:      url,
		Client:   &http.Client{},
	}, nil
}

func (a *AiModelYandex) Name() string {
	return ai_model.ProviderYandex + "/" + a.Model
}

func (a *AiModelYandex) Generate(ctx context.Context, prompt string) (string, error) {
	log.Printf("[AiModelYandex.Generate] model=%s prompt bytes=%d", a.Model, len(prompt))

	reqBody, err := a.prepareModelRequest(prompt)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.URL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("yandex: new request: %w", err)
	}
	a.prepareHttpRequest(req)

	resp, err := a.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("yandex: request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			log.Println("[AiModelYandex.Generate] Body.Close():", cerr)
		}
	}(resp.Body)

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("yandex: read body: %w", err)
	}

	if !isRequestSuccessful(resp.StatusCode) {
		var ye yaError
		if json.Unmarshal(rawResp, &ye) == nil && ye.Error.Message != "" {
			return "", fmt.Errorf("yandex: %s: %s", resp.Status, ye.Error.Message)
		}
		return "", fmt.Errorf("yandex: %s", resp.Status)
	}

	var yr yaResponse
	if err := json.Unmarshal(rawResp, &yr); err != nil {
		return "", fmt.Errorf("yandex: decode response: %w", err)
	}
	if len(yr.Result.Alternatives) == 0 {
		return "", ai_model.ErrEmptyReply
	}

	return yr.Result.Alternatives[0].Message.Text, nil
}

// --- private ---

func (a *AiModelYandex) prepareModelRequest(prompt string) ([]byte, error) {
	r := request{
		ModelURI: fmt.Sprintf("gpt://%s/%s", a.FolderID, a.Model),
		Messages: []message{{Role: roleUser, Text: prompt}},
	}
	r.CompletionOptions.Stream = false
	r.CompletionOptions.Temperature = modelTemperature
	r.CompletionOptions.MaxTokens = maxTokens

	req, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("yandex: encode request: %w", err)
	}
	return req, nil
}

func (a *AiModelYandex) prepareHttpRequest(req *http.Request) {
	req.Header.Set("Authorization", "Api-Key "+a.ApiKey)
	req.Header.Set("Content-Type", "application/json")
}

func isRequestSuccessful(status int) bool {
	return status >= 200 && status < 300
}
