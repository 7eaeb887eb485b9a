package services

import (
	"context"
	"fmt"
	"log"

	"fitness-chatbot/llm"
	"fitness-chatbot/models"
	"fitness-chatbot/postprocess"
	"fitness-chatbot/speech"
	"fitness-chatbot/store"
	"fitness-chatbot/transcript"
)

// FailureKind tags what part of a turn went wrong.
type FailureKind string

const (
	FailureModel FailureKind = "model"
)

// TurnFailure is a turn outcome that is not an answer. Keeping it a tagged
// value instead of substituting the error text as the reply lets storage
// and rendering treat failures differently from genuine content.
type TurnFailure struct {
	Kind   FailureKind `json:"kind"`
	Detail string      `json:"detail"`
}

// TurnResult is the outcome of one chat turn. Exactly one of Reply and
// Failure is meaningful.
type TurnResult struct {
	Reply     string           // normalized bot reply
	Failure   *TurnFailure     // set when the model call failed; nothing was persisted
	Messages  []models.Message // full updated display history
	AudioPath string           // synthesized reply audio, set only when a synthesizer is attached
}

// ChatService runs the request/response cycle of a chat turn: load history,
// assemble context, invoke the model, normalize, persist both sides.
// One turn at a time per caller; every step blocks inline.
type ChatService struct {
	store    store.MessageStore
	provider llm.Provider
	synth    speech.Synthesizer
	linkify  bool
}

// ChatOptions configures the rendering-path specifics of a ChatService.
type ChatOptions struct {
	// Synthesizer, when set, renders each reply to an audio file whose path
	// is returned in the TurnResult. Synthesis failures never fail the turn.
	Synthesizer speech.Synthesizer
	// LinkifyReplies wraps URLs in anchor markup before the reply is stored,
	// matching what the web UI displays. The CLI leaves this off.
	LinkifyReplies bool
}

func NewChatService(st store.MessageStore, provider llm.Provider, opts ChatOptions) *ChatService {
	return &ChatService{
		store:    st,
		provider: provider,
		synth:    opts.Synthesizer,
		linkify:  opts.LinkifyReplies,
	}
}

// HandleTurn runs one full turn for the session. Store failures are hard
// failures and come back as the error; a model failure comes back as a
// tagged TurnResult with nothing persisted, preserving the invariant that
// no partial turns reach storage.
func (s *ChatService) HandleTurn(ctx context.Context, sessionID, userText string) (*TurnResult, error) {
	history, err := s.store.List(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	prompt := transcript.Build(history, userText)

	raw, err := s.provider.Invoke(ctx, prompt)
	if err != nil {
		return &TurnResult{
			Failure:  &TurnFailure{Kind: FailureModel, Detail: err.Error()},
			Messages: history,
		}, nil
	}

	reply := postprocess.Normalize(raw)
	if s.linkify {
		reply = postprocess.Linkify(reply)
	}

	// Two separate appends; not atomic. Acceptable for a single-user
	// interactive tool: a crash between them leaves one unanswered user
	// line, which the next transcript simply renders as such.
	if err := s.store.Append(ctx, sessionID, models.SenderUser, userText); err != nil {
		return nil, fmt.Errorf("persist user turn: %w", err)
	}
	if err := s.store.Append(ctx, sessionID, models.SenderBot, reply); err != nil {
		return nil, fmt.Errorf("persist bot turn: %w", err)
	}

	messages, err := s.store.List(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("reload history: %w", err)
	}

	result := &TurnResult{Reply: reply, Messages: messages}

	if s.synth != nil {
		audioPath, synthErr := s.synth.SynthesizeToFile(ctx, reply)
		if synthErr != nil {
			log.Printf("speech synthesis failed: %v", synthErr)
		} else {
			result.AudioPath = audioPath
		}
	}

	return result, nil
}

// RecordExchange persists a user/bot pair produced outside the model path,
// such as a nutrition lookup answer, and returns the updated history.
func (s *ChatService) RecordExchange(ctx context.Context, sessionID, userText, botText string) ([]models.Message, error) {
	if err := s.store.Append(ctx, sessionID, models.SenderUser, userText); err != nil {
		return nil, fmt.Errorf("persist user turn: %w", err)
	}
	if err := s.store.Append(ctx, sessionID, models.SenderBot, botText); err != nil {
		return nil, fmt.Errorf("persist bot turn: %w", err)
	}
	return s.store.List(ctx, sessionID)
}

// History returns a session's stored messages, oldest first.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]models.Message, error) {
	return s.store.List(ctx, sessionID)
}
