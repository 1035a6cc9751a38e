package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/inference"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModelName = "gemini-1.5-flash"

type geminiClient struct {
	params inference.Params
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string, params inference.Params) (inference.IInference, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if params.Model == "" {
		params.Model = defaultModelName
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		params: params,
		client: client,
	}, nil
}

func (g *geminiClient) ChatCompletion(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.params.Model)
	model.SetMaxOutputTokens(int32(g.params.MaxTokens))
	model.SetTemperature(g.params.Temperature)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	return firstText(res)
}

// firstText extracts the first text part of the first candidate.
func firstText(res *genai.GenerateContentResponse) (string, error) {
	if res == nil || len(res.Candidates) == 0 {
		return "", inference.ErrNoContent
	}

	content := res.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", inference.ErrNoContent
	}

	text, ok := content.Parts[0].(genai.Text)
	if !ok || text == "" {
		return "", inference.ErrNoContent
	}

	return string(text), nil
}

func (g *geminiClient) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
