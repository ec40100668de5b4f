package yandex

const roleUser = "user"

type message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type request struct {
	ModelURI          string `json:"modelUri"`
	CompletionOptions struct {
		Stream      bool    `json:"stream"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"maxTokens"`
	} `json:"completionOptions"`
	Messages []message `json:"messages"`
}
