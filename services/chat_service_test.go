package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fitness-chatbot/models"
	"fitness-chatbot/services"
	"fitness-chatbot/store"
)

type fakeProvider struct {
	reply   string
	err     error
	prompts []string
}

func (p *fakeProvider) Invoke(ctx context.Context, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

type fakeSynthesizer struct {
	path string
	err  error
}

func (s *fakeSynthesizer) Speak(ctx context.Context, text string) error { return s.err }

func (s *fakeSynthesizer) SynthesizeToFile(ctx context.Context, text string) (string, error) {
	return s.path, s.err
}

func TestHandleTurnPersistsAlternatingPairs(t *testing.T) {
	st := store.NewInMemoryStore()
	provider := &fakeProvider{reply: "Nice to meet you!"}
	svc := services.NewChatService(st, provider, services.ChatOptions{})
	sessionID := services.NewSessionID()

	const turns = 3
	for i := 0; i < turns; i++ {
		result, err := svc.HandleTurn(context.Background(), sessionID, fmt.Sprintf("question %d", i))
		assert.NoError(t, err)
		assert.Nil(t, result.Failure)
		assert.Equal(t, "Nice to meet you!", result.Reply)
	}

	messages, err := st.List(context.Background(), sessionID)
	assert.NoError(t, err)
	assert.Len(t, messages, 2*turns)
	for i, msg := range messages {
		if i%2 == 0 {
			assert.Equal(t, models.SenderUser, msg.Sender)
		} else {
			assert.Equal(t, models.SenderBot, msg.Sender)
		}
		if i > 0 {
			assert.False(t, msg.Timestamp.Before(messages[i-1].Timestamp))
		}
	}
}

func TestHandleTurnReplaysHistoryInPrompt(t *testing.T) {
	st := store.NewInMemoryStore()
	provider := &fakeProvider{reply: "Hello! How can I help?"}
	svc := services.NewChatService(st, provider, services.ChatOptions{})
	sessionID := services.NewSessionID()

	_, err := svc.HandleTurn(context.Background(), sessionID, "hi")
	assert.NoError(t, err)

	_, err = svc.HandleTurn(context.Background(), sessionID, "suggest a workout")
	assert.NoError(t, err)

	assert.Len(t, provider.prompts, 2)
	assert.Equal(t, "User: hi", provider.prompts[0])

	second := provider.prompts[1]
	userIdx := strings.Index(second, "User: hi")
	botIdx := strings.Index(second, "Bot: ")
	assert.GreaterOrEqual(t, userIdx, 0)
	assert.Greater(t, botIdx, userIdx)
	assert.True(t, strings.HasSuffix(second, "User: suggest a workout"))
}

func TestHandleTurnNormalizesReply(t *testing.T) {
	st := store.NewInMemoryStore()
	provider := &fakeProvider{reply: "Watch [this](https://youtube.com/watch?v=abc)"}
	svc := services.NewChatService(st, provider, services.ChatOptions{})
	sessionID := services.NewSessionID()

	result, err := svc.HandleTurn(context.Background(), sessionID, "show me a tutorial")
	assert.NoError(t, err)
	for _, ch := range []string{"[", "]", "(", ")"} {
		assert.NotContains(t, result.Reply, ch)
	}
}

func TestHandleTurnLinkifiesForWebPath(t *testing.T) {
	st := store.NewInMemoryStore()
	provider := &fakeProvider{reply: "Here is the tutorial: https://youtube.com/watch?v=abc"}
	svc := services.NewChatService(st, provider, services.ChatOptions{LinkifyReplies: true})
	sessionID := services.NewSessionID()

	result, err := svc.HandleTurn(context.Background(), sessionID, "show me a tutorial")
	assert.NoError(t, err)
	assert.Contains(t, result.Reply, "<a href='https://youtube.com/watch?v=abc'")

	// The stored bot turn carries the anchored text, matching the display.
	messages, err := st.List(context.Background(), sessionID)
	assert.NoError(t, err)
	assert.Contains(t, messages[1].Text, "<a href=")
}

func TestHandleTurnModelFailureIsTaggedAndUnpersisted(t *testing.T) {
	st := store.NewInMemoryStore()
	provider := &fakeProvider{err: fmt.Errorf("model unavailable")}
	svc := services.NewChatService(st, provider, services.ChatOptions{})
	sessionID := services.NewSessionID()

	result, err := svc.HandleTurn(context.Background(), sessionID, "hi")
	assert.NoError(t, err)
	assert.NotNil(t, result.Failure)
	assert.Equal(t, services.FailureModel, result.Failure.Kind)
	assert.Equal(t, "model unavailable", result.Failure.Detail)
	assert.Empty(t, result.Reply)

	messages, err := st.List(context.Background(), sessionID)
	assert.NoError(t, err)
	assert.Empty(t, messages)
}

func TestHandleTurnAttachesAudioPath(t *testing.T) {
	st := store.NewInMemoryStore()
	provider := &fakeProvider{reply: "Try three sets of squats."}
	synth := &fakeSynthesizer{path: "/tmp/reply-1.wav"}
	svc := services.NewChatService(st, provider, services.ChatOptions{Synthesizer: synth})

	result, err := svc.HandleTurn(context.Background(), services.NewSessionID(), "leg day?")
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/reply-1.wav", result.AudioPath)
}

func TestHandleTurnSynthesisFailureDoesNotFailTurn(t *testing.T) {
	st := store.NewInMemoryStore()
	provider := &fakeProvider{reply: "Try three sets of squats."}
	synth := &fakeSynthesizer{err: fmt.Errorf("no audio device")}
	svc := services.NewChatService(st, provider, services.ChatOptions{Synthesizer: synth})

	result, err := svc.HandleTurn(context.Background(), services.NewSessionID(), "leg day?")
	assert.NoError(t, err)
	assert.Nil(t, result.Failure)
	assert.Empty(t, result.AudioPath)
}

func TestHistoryUnknownSessionIsEmpty(t *testing.T) {
	st := store.NewInMemoryStore()
	svc := services.NewChatService(st, &fakeProvider{reply: "ok"}, services.ChatOptions{})

	messages, err := svc.History(context.Background(), "no-such-session")
	assert.NoError(t, err)
	assert.Empty(t, messages)
}

func TestRecordExchange(t *testing.T) {
	st := store.NewInMemoryStore()
	svc := services.NewChatService(st, &fakeProvider{reply: "ok"}, services.ChatOptions{})
	sessionID := services.NewSessionID()

	messages, err := svc.RecordExchange(context.Background(), sessionID,
		"nutrition for banana", "Food: banana\nCalories: 105 kcal")
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, models.SenderUser, messages[0].Sender)
	assert.Equal(t, models.SenderBot, messages[1].Sender)
}

func TestNewSessionIDIsUnique(t *testing.T) {
	a := services.NewSessionID()
	b := services.NewSessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
