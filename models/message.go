package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one chat turn half, grouped by session and ordered by timestamp.
// Collection: chat
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID string             `bson:"session_id" json:"session_id"`
	Sender    Sender             `bson:"sender" json:"sender"`
	Text      string             `bson:"message" json:"message"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
