// README: Chat service; logs the conversation and composes canned replies.
package chat

import (
	"context"
	"time"

	"tripmate/internal/types"
)

// HistoryLimit caps the number of messages returned per history request.
const HistoryLimit = 100

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Respond appends the inbound message, classifies it, appends the composed
// assistant reply (tips recorded in the message meta), and returns the reply.
// The user message is persisted even if the assistant write later fails.
func (s *Service) Respond(ctx context.Context, userID types.ID, message, locale string) (Reply, error) {
	now := time.Now().UTC()
	if err := s.store.Append(ctx, &Message{
		UserID:    userID,
		Role:      RoleUser,
		Content:   message,
		CreatedAt: now,
	}); err != nil {
		return Reply{}, err
	}

	reply := Compose(Classify(message), locale)

	if err := s.store.Append(ctx, &Message{
		UserID:    userID,
		Role:      RoleAssistant,
		Content:   reply.Reply,
		Meta:      map[string]any{"tips": reply.Tips},
		CreatedAt: now,
	}); err != nil {
		return Reply{}, err
	}
	return reply, nil
}

// VoiceReply logs a placeholder transcript as a user message (tagged with its
// source) and answers it like any typed message, always in the default locale.
func (s *Service) VoiceReply(ctx context.Context, userID types.ID, transcript string) (Reply, error) {
	now := time.Now().UTC()
	if err := s.store.Append(ctx, &Message{
		UserID:    userID,
		Role:      RoleUser,
		Content:   transcript,
		Meta:      map[string]any{"source": "voice"},
		CreatedAt: now,
	}); err != nil {
		return Reply{}, err
	}

	reply := Compose(Classify(transcript), "en")

	if err := s.store.Append(ctx, &Message{
		UserID:    userID,
		Role:      RoleAssistant,
		Content:   reply.Reply,
		CreatedAt: now,
	}); err != nil {
		return Reply{}, err
	}
	return reply, nil
}

func (s *Service) History(ctx context.Context, userID types.ID) ([]Message, error) {
	return s.store.History(ctx, userID, HistoryLimit)
}
