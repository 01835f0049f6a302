// Package llm wraps the OpenAI-compatible chat-completion API used to turn
// business questions into SQL. The client is constructed once at boot and
// injected where needed; it is immutable after construction.
package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Client generates SQL through a chat-completion provider. The default
// configuration targets Groq's OpenAI-compatible endpoint.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient builds a completion client for the given provider endpoint.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// GenerateSQL sends the system context and question to the model and returns
// its raw completion text. Temperature is pinned so identical questions
// produce identical SQL. Provider errors are returned as-is so callers can
// surface the provider's own status code.
func (c *Client) GenerateSQL(ctx context.Context, systemPrompt, question string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Return ONLY a single SELECT statement for: %s", question)},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
