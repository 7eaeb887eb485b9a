package llm

import (
	"context"
	"fmt"

	"fitness-chatbot/config"
)

// SYSTEM_INSTRUCTION is the fitness persona given to every provider.
// Topic enforcement is entirely prompt-based; replies are not verified
// to have stayed on-topic.
const SYSTEM_INSTRUCTION = `You are a fitness chatbot that provides advice on workouts, nutrition, and fitness goals only.
Remember whatever the user tells you, like name, fitness goal and progress; remember everything the user told you.
Be friendly and informative in your answers. Also suggest the latest exercise video tutorials available on YouTube for every exercise you suggest, according to the question. Include the YouTube links directly in the response like this:
"Here is the tutorial: https://www.youtube.com/watch?v=example". Also give nutrition information and advice.
Do not use Markdown or nested links. Keep the response clean and user-friendly.
Accept only fitness related queries and apologize in a friendly way if any question other than fitness arrives.
The conversation so far, ending with the user's current question, follows.`

// Provider is the single request/response chat model interface.
// No streaming; one prompt in, one reply out.
type Provider interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// New builds a provider from configuration.
func New(cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "", "gemini":
		return NewGeminiProvider(cfg.GeminiModel), nil
	case "openai":
		return NewOpenAIProvider(cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
