package hugging_face

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"llmChat/internal/ai_model"
)

type Model string

const (
	Zai_org_glm_4dot6      Model = "zai-org/GLM-4.6:novita"                        //357B params
	Qwen_3                 Model = "Qwen/Qwen3-1.7B:featherless-ai"                //2.03B params
	DeepSeek_R1            Model = "deepseek-ai/DeepSeek-R1:fireworks-ai"          //685B params
	Meta_llama_llama_3dot1 Model = "meta-llama/Llama-3.1-8B-Instruct:fireworks-ai" //8.03B params
)

const DefaultModel = Zai_org_glm_4dot6

const url = "https://router.huggingface.co/v1/chat/completions"

const roleUser = "user"

type HuggingFace struct {
	Token  string
	Model  Model
	URL    string
	Client *http.Client
}

// NewHuggingFaceModel talks to the OpenAI-compatible router. A zero http.Client
// has no timeout; bound calls with the context instead.
func NewHuggingFaceModel(token string, model Model) *HuggingFace {
	if model == "" {
		model = DefaultModel
	}
	return &HuggingFace{Token: token, Model: model, URL: url, Client: &http.Client{}}
}

func (h *HuggingFace) Name() string {
	return ai_model.ProviderHuggingFace + "/" + string(h.Model)
}

func (h *HuggingFace) Generate(ctx context.Context, prompt string) (string, error) {
	if h.Token == "" {
		log.Println("[HuggingFace.Generate] empty token")
		return "", fmt.Errorf("huggingface: empty token")
	}

	log.Printf("[HuggingFace.Generate model: %s] prompt bytes=%d", h.Model, len(prompt))

	body, err := json.Marshal(request{
		Messages: []message{{Role: roleUser, Content: prompt}},
		Model:    string(h.Model),
	})
	if err != nil {
		log.Println("[HuggingFace.Generate] marshal error:", err)
		return "", fmt.Errorf("huggingface: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(body))
	if err != nil {
		log.Println("[HuggingFace.Generate] create request error:", err)
		return "", fmt.Errorf("huggingface: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		log.Println("[HuggingFace.Generate] request error:", err)
		return "", fmt.Errorf("huggingface: send request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			log.Println("[HuggingFace.Generate] Body.Close():", cerr)
		}
	}(resp.Body)

	log.Printf("[HuggingFace.Generate] HTTP status: %d %s", resp.StatusCode, resp.Status)

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("[HuggingFace.Generate] Error reading body:", err)
		return "", fmt.Errorf("huggingface: read response: %w", err)
	}

	var hgResp response
	decodeErr := json.Unmarshal(rawResp, &hgResp)

	if !isRequestSuccessful(resp.StatusCode) {
		log.Println("[HuggingFace.Generate] Request failed:", resp.StatusCode)
		if decodeErr == nil && hgResp.Error != nil && hgResp.Error.Message != "" {
			return "", fmt.Errorf("huggingface: status %d: %s", resp.StatusCode, hgResp.Error.Message)
		}
		return "", fmt.Errorf("huggingface: status %d: %s", resp.StatusCode, strings.TrimSpace(string(rawResp)))
	}

	if decodeErr != nil {
		log.Println("[HuggingFace.Generate] decode HuggingFace response:", decodeErr)
		return "", fmt.Errorf("huggingface: decode response: %w", decodeErr)
	}
	if len(hgResp.Choices) == 0 {
		log.Println("[HuggingFace.Generate] no choices in response")
		return "", ai_model.ErrEmptyReply
	}

	log.Printf("[HuggingFace.Generate] total tokens=%d", hgResp.Usage.TotalTokens)
	return hgResp.Choices[0].Message.Content, nil
}

func isRequestSuccessful(status int) bool {
	return status >= 200 && status < 300
}
