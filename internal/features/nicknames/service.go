// service.go — nickname business logic over the Store contract.
package nicknames

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/tg"
)

// ErrEmptyNickname — the nickname text is missing. The handler turns this
// into the "write the nickname after the command" reply.
var ErrEmptyNickname = errors.New("nickname text is empty")

// Store is the persistence contract; *Repository implements it.
type Store interface {
	Upsert(ctx context.Context, chatID, userID int64, meta tg.UserMeta, nickname string) error
	Get(ctx context.Context, chatID, userID int64) (string, error)
	List(ctx context.Context, chatID int64) ([]Nickname, error)
	Delete(ctx context.Context, chatID, userID int64) error
}

// Service manages nicknames for one bot instance.
type Service struct {
	store Store
}

// NewService creates the nickname service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Set assigns a nickname to (chatID, userID), replacing any previous one.
func (s *Service) Set(ctx context.Context, chatID, userID int64, meta tg.UserMeta, nickname string) error {
	if nickname == "" {
		return ErrEmptyNickname
	}
	if err := s.store.Upsert(ctx, chatID, userID, meta, nickname); err != nil {
		return fmt.Errorf("failed to set nickname: %w", err)
	}
	log.WithFields(log.Fields{
		"chat_id": chatID,
		"user_id": userID,
	}).Debug("nickname set")
	return nil
}

// Get returns the active nickname, or common.ErrNotFound.
func (s *Service) Get(ctx context.Context, chatID, userID int64) (string, error) {
	return s.store.Get(ctx, chatID, userID)
}

// List returns the chat's nicknames newest-first.
func (s *Service) List(ctx context.Context, chatID int64) ([]Nickname, error) {
	return s.store.List(ctx, chatID)
}

// Delete removes the target's nickname; absent records are a no-op.
func (s *Service) Delete(ctx context.Context, chatID, userID int64) error {
	return s.store.Delete(ctx, chatID, userID)
}
