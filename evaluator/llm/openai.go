package llm

import (
	"context"
	"errors"
	"fmt"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIModel implements ChatModel against OpenAI's chat completions
// API.
type OpenAIModel struct {
	apiKey    string
	modelName string
}

// NewOpenAIModel creates an OpenAIModel. An empty modelName defaults
// to gpt-4o.
func NewOpenAIModel(apiKey, modelName string) *OpenAIModel {
	if modelName == "" {
		modelName = "gpt-4o"
	}
	return &OpenAIModel{apiKey: apiKey, modelName: modelName}
}

// Complete implements ChatModel.
func (m *OpenAIModel) Complete(ctx context.Context, prompt string) (string, error) {
	if m.apiKey == "" {
		return "", errors.New("llm: OpenAI API key is required")
	}

	client := openaisdk.NewClient(option.WithAPIKey(m.apiKey))
	resp, err := client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(m.modelName),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
