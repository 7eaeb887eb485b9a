// Package transcript rebuilds a session's linear conversation text from
// stored messages, which becomes the model's prompt context.
package transcript

import (
	"strings"

	"fitness-chatbot/models"
)

// Build renders the full history as "User: ..." / "Bot: ..." lines and
// appends the new user turn as the final line. Pure and deterministic.
// The whole history is sent every turn; there is no windowing or
// token-budget truncation.
func Build(history []models.Message, newUserText string) string {
	var b strings.Builder
	for _, msg := range history {
		if msg.Sender == models.SenderUser {
			b.WriteString("User: ")
		} else {
			b.WriteString("Bot: ")
		}
		b.WriteString(msg.Text)
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	b.WriteString(newUserText)
	return b.String()
}
