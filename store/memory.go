package store

import (
	"context"
	"sync"
	"time"

	"fitness-chatbot/models"
)

// InMemoryStore keeps messages in a map. It backs tests and runs without
// any external infrastructure; history is lost when the process exits.
type InMemoryStore struct {
	mu       sync.RWMutex
	messages map[string][]models.Message
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		messages: make(map[string][]models.Message),
	}
}

func (s *InMemoryStore) Append(ctx context.Context, sessionID string, sender models.Sender, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages[sessionID] = append(s.messages[sessionID], models.Message{
		SessionID: sessionID,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	})
	return nil
}

func (s *InMemoryStore) List(ctx context.Context, sessionID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.messages[sessionID]
	// Copy so callers cannot mutate stored history.
	result := make([]models.Message, len(msgs))
	copy(result, msgs)
	return result, nil
}
