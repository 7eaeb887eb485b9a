package transcript_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitness-chatbot/models"
	"fitness-chatbot/transcript"
)

func TestBuildEmptyHistory(t *testing.T) {
	prompt := transcript.Build(nil, "hi")
	assert.Equal(t, "User: hi", prompt)
}

func TestBuildRendersHistoryInOrder(t *testing.T) {
	history := []models.Message{
		{Sender: models.SenderUser, Text: "hi"},
		{Sender: models.SenderBot, Text: "hello there"},
	}

	prompt := transcript.Build(history, "plan my workout")
	assert.Equal(t, "User: hi\nBot: hello there\nUser: plan my workout", prompt)
}

func TestBuildIsDeterministic(t *testing.T) {
	history := []models.Message{
		{Sender: models.SenderUser, Text: "what should I eat"},
		{Sender: models.SenderBot, Text: "plenty of protein"},
		{Sender: models.SenderUser, Text: "and for cardio?"},
		{Sender: models.SenderBot, Text: "try running"},
	}

	first := transcript.Build(history, "thanks")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, transcript.Build(history, "thanks"))
	}
}
