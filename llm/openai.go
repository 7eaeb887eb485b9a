package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"fitness-chatbot/config"
)

// OpenAIProvider invokes an OpenAI chat completion model.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(model string) *OpenAIProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	client := openai.NewClient(option.WithAPIKey(config.OpenAIAPIKey()))
	return &OpenAIProvider{
		client: &client,
		model:  model,
	}
}

func (p *OpenAIProvider) Invoke(ctx context.Context, prompt string) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SYSTEM_INSTRUCTION),
			openai.UserMessage(prompt),
		},
		Model: p.model,
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
