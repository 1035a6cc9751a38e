// Package inference defines the contract shared by the chat-completion
// clients under pkg/openai, pkg/gemini and pkg/anthropic.
package inference

import (
	"context"
	"errors"
)

// ErrNoContent is returned when the provider answered without any message
// text to extract.
var ErrNoContent = errors.New("inference: response carried no message content")

type IInference interface {
	ChatCompletion(ctx context.Context, prompt string) (string, error)
}

// Params are fixed for the lifetime of a client.
type Params struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

const (
	DefaultMaxTokens   = 1024
	DefaultTemperature = 0.7
)
