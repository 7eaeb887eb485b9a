package services

import "github.com/google/uuid"

// NewSessionID mints the opaque identifier that scopes one interactive run.
// 128-bit random value in textual form; collisions are treated as negligible
// and never checked against storage. The id itself is not persisted until a
// message references it.
func NewSessionID() string {
	return uuid.NewString()
}
