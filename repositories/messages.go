package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitness-chatbot/models"
)

type MessageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database, collection string) *MessageRepository {
	if collection == "" {
		collection = "chat"
	}
	return &MessageRepository{col: db.Collection(collection)}
}

// Append writes one message with a server-assigned timestamp.
// Failures propagate to the caller; there is no retry or buffering.
func (r *MessageRepository) Append(ctx context.Context, sessionID string, sender models.Sender, text string) error {
	msg := models.Message{
		SessionID: sessionID,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
	_, err := r.col.InsertOne(ctx, msg)
	return err
}

// List returns all messages of a session in timestamp ascending order.
// An unknown session yields an empty slice, not an error.
func (r *MessageRepository) List(ctx context.Context, sessionID string) ([]models.Message, error) {
	filter := bson.M{"session_id": sessionID}
	// Secondary _id key keeps user/bot pairs in insert order when both
	// land on the same millisecond timestamp.
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := make([]models.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
