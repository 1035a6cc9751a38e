package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/inference"

	"github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is the Hugging Face router, which speaks the OpenAI chat
// completion protocol.
const DefaultBaseURL = "https://router.huggingface.co/v1"

const DefaultModel = "meta-llama/Llama-3.1-8B-Instruct"

type chatService struct {
	client *openai.Client
	params inference.Params
}

// NewChat builds a client for any OpenAI-compatible chat completion
// endpoint.
func NewChat(token, baseURL string, params inference.Params) inference.IInference {
	cfg := openai.DefaultConfig(token)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}

	if params.Model == "" {
		params.Model = DefaultModel
	}

	return &chatService{
		client: openai.NewClientWithConfig(cfg),
		params: params,
	}
}

func (c *chatService) ChatCompletion(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.params.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: c.params.Temperature,
			MaxTokens:   c.params.MaxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("chat completion API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", inference.ErrNoContent
	}

	return resp.Choices[0].Message.Content, nil
}
