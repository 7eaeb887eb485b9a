package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fitness-chatbot/models"
)

// RedisStore keeps each session's messages as a JSON list under
// "session:{sessionID}". RPush preserves append order, so List does not
// need an explicit sort.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, sender models.Sender, text string) error {
	msg := models.Message{
		SessionID: sessionID,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	key := sessionKey(sessionID)
	return s.client.RPush(ctx, key, b).Err()
}

func (s *RedisStore) List(ctx context.Context, sessionID string) ([]models.Message, error) {
	items, err := s.client.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, len(items))
	for i, item := range items {
		var msg models.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("unmarshal message at index %d: %w", i, err)
		}
		messages[i] = msg
	}
	return messages, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
