package dto

import (
	"time"

	"fitness-chatbot/models"
	"fitness-chatbot/services"
)

// MessageDTO is one chat message as rendered to API clients.
type MessageDTO struct {
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMessageDTO(m models.Message) MessageDTO {
	return MessageDTO{
		Sender:    string(m.Sender),
		Message:   m.Text,
		Timestamp: m.Timestamp,
	}
}

func NewMessageDTOs(msgs []models.Message) []MessageDTO {
	out := make([]MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, NewMessageDTO(m))
	}
	return out
}

// CreateSessionResponse carries a freshly minted session id.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

// ChatRequest is one typed user turn.
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// FailureDTO mirrors services.TurnFailure for API clients.
type FailureDTO struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// ChatResponse is the outcome of a turn. Failure is set instead of Reply
// when the model call failed; the history then contains no new messages.
type ChatResponse struct {
	SessionID string       `json:"session_id"`
	Reply     string       `json:"reply,omitempty"`
	Failure   *FailureDTO  `json:"failure,omitempty"`
	AudioPath string       `json:"audio_path,omitempty"`
	Messages  []MessageDTO `json:"messages"`
}

func NewChatResponse(sessionID string, r *services.TurnResult) ChatResponse {
	resp := ChatResponse{
		SessionID: sessionID,
		Reply:     r.Reply,
		AudioPath: r.AudioPath,
		Messages:  NewMessageDTOs(r.Messages),
	}
	if r.Failure != nil {
		resp.Failure = &FailureDTO{Kind: string(r.Failure.Kind), Detail: r.Failure.Detail}
	}
	return resp
}
