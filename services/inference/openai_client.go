package inference

import (
	"context"
	"net/http"
	"strings"
)

const (
	openAIBaseURL      = "https://api.openai.com/v1"
	DefaultOpenAIModel = "gpt-4.1-nano-2025-04-14"
)

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenAIClient calls the chat completions endpoint.
type OpenAIClient struct {
	apiKey  string
	model   string
	baseURL string
	transport
}

func NewOpenAIClient(opts Options) *OpenAIClient {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultOpenAIModel
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = openAIBaseURL
	}
	return &OpenAIClient{
		apiKey:    strings.TrimSpace(opts.APIKey),
		model:     model,
		baseURL:   baseURL,
		transport: newTransport("openai", opts),
	}
}

// Complete returns the trimmed content of the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body := openAIRequest{
		Model: c.model,
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.apiKey)

	var resp openAIResponse
	if err := c.postJSON(ctx, c.baseURL+"/chat/completions", header, body, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
