package llm

import (
	"context"

	"google.golang.org/genai"

	"fitness-chatbot/config"
)

// GeminiProvider invokes a hosted Gemini model. A client is created per
// call; the genai client holds no reusable connection state worth caching.
type GeminiProvider struct {
	model string
}

func NewGeminiProvider(model string) *GeminiProvider {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiProvider{model: model}
}

func (p *GeminiProvider) Invoke(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.GeminiAPIKey(),
	})
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}
