package llm

import (
	"context"
	"errors"
	"fmt"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicModel implements ChatModel against Anthropic's Claude API.
type AnthropicModel struct {
	apiKey    string
	modelName string
}

// NewAnthropicModel creates an AnthropicModel. An empty modelName
// defaults to Claude Sonnet.
func NewAnthropicModel(apiKey, modelName string) *AnthropicModel {
	if modelName == "" {
		modelName = "claude-sonnet-4-5-20250929"
	}
	return &AnthropicModel{apiKey: apiKey, modelName: modelName}
}

// Complete implements ChatModel.
func (m *AnthropicModel) Complete(ctx context.Context, prompt string) (string, error) {
	if m.apiKey == "" {
		return "", errors.New("llm: anthropic API key is required")
	}

	client := anthropicsdk.NewClient(option.WithAPIKey(m.apiKey))
	resp, err := client.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(m.modelName),
		MaxTokens: 256,
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: anthropic API error: %w", err)
	}

	var out string
	for _, block := range resp.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	return out, nil
}
