package store

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"fitness-chatbot/config"
	"fitness-chatbot/db"
	"fitness-chatbot/models"
	"fitness-chatbot/repositories"
)

// MessageStore is the durable append-only log of chat messages, keyed by
// session id and ordered by timestamp. The store exclusively owns message
// records; nothing else mutates them.
type MessageStore interface {
	// Append assigns the current server time and writes one record.
	// A failing backend is a hard failure for the caller.
	Append(ctx context.Context, sessionID string, sender models.Sender, text string) error
	// List returns a session's messages in timestamp ascending order.
	// Unknown sessions yield an empty slice.
	List(ctx context.Context, sessionID string) ([]models.Message, error)
}

// New builds a message store from configuration.
func New(ctx context.Context, cfg config.StoreConfig) (MessageStore, error) {
	switch cfg.Type {
	case "", "mongo":
		if err := db.Init(ctx); err != nil {
			return nil, fmt.Errorf("init mongo: %w", err)
		}
		return repositories.NewMessageRepository(db.Database(), cfg.Collection), nil

	case "redis":
		opts, err := goredis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := goredis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return NewRedisStore(client), nil

	case "memory":
		return NewInMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
	}
}
