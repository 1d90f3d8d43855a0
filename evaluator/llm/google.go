package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GoogleModel implements ChatModel against Google's Gemini API.
type GoogleModel struct {
	apiKey    string
	modelName string
}

// NewGoogleModel creates a GoogleModel. An empty modelName defaults to
// gemini-2.5-flash.
func NewGoogleModel(apiKey, modelName string) *GoogleModel {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &GoogleModel{apiKey: apiKey, modelName: modelName}
}

// Complete implements ChatModel.
func (m *GoogleModel) Complete(ctx context.Context, prompt string) (string, error) {
	if m.apiKey == "" {
		return "", errors.New("llm: google API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(m.apiKey))
	if err != nil {
		return "", fmt.Errorf("llm: google client: %w", err)
	}
	defer client.Close()

	genModel := client.GenerativeModel(m.modelName)
	resp, err := genModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("llm: google API error: %w", err)
	}

	var out string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if t, ok := part.(genai.Text); ok {
				out += string(t)
			}
		}
	}
	return out, nil
}
