package anthropic

import (
	"context"
	"fmt"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/inference"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultModel = "claude-haiku-4-5"

type anthropicClient struct {
	client *anthropic.Client
	params inference.Params
}

func NewAnthropicClient(apiKey string, params inference.Params, opts ...option.RequestOption) inference.IInference {
	if params.Model == "" {
		params.Model = defaultModel
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := anthropic.NewClient(opts...)

	return &anthropicClient{
		client: &client,
		params: params,
	}
}

func (c *anthropicClient) ChatCompletion(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.params.Model),
		MaxTokens:   int64(c.params.MaxTokens),
		Temperature: anthropic.Float(float64(c.params.Temperature)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		return "", inference.ErrNoContent
	}

	return resp.Content[0].Text, nil
}
