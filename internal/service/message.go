package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/openboard/backend/internal/model"
)

type MessageStore interface {
	InsertMessage(ctx context.Context, id uuid.UUID, authorID int64, text string) error
	ListMessages(ctx context.Context) ([]model.MessageEntry, error)
}

type MessageService struct {
	store MessageStore
}

func NewMessageService(store MessageStore) *MessageService {
	return &MessageService{store: store}
}

func (s *MessageService) Create(ctx context.Context, authorID int64, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrMissingField
	}
	return s.store.InsertMessage(ctx, uuid.New(), authorID, text)
}

func (s *MessageService) List(ctx context.Context) ([]model.MessageEntry, error) {
	return s.store.ListMessages(ctx)
}
