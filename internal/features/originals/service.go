// service.go — original-snapshot business logic. The unknown-type guard
// lives here so no caller path can persist an unsendable payload.
package originals

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/common"
	"github.com/amirhosseinweb/tellbitj/internal/payload"
	"github.com/amirhosseinweb/tellbitj/internal/tg"
)

// Store is the persistence contract; *Repository implements it.
type Store interface {
	Upsert(ctx context.Context, chatID, userID int64, meta tg.UserMeta, p payload.Payload) error
	Get(ctx context.Context, chatID, userID int64) (*Original, error)
	List(ctx context.Context, chatID int64) ([]ListEntry, error)
	Delete(ctx context.Context, chatID, userID int64) error
}

// Service manages original snapshots.
type Service struct {
	store Store
}

// NewService creates the originals service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Capture stores the payload as the user's original, replacing any previous
// one. Payloads of unknown type are rejected before they reach the store.
func (s *Service) Capture(ctx context.Context, chatID, userID int64, meta tg.UserMeta, p payload.Payload) error {
	if p.Type == payload.TypeUnknown {
		return common.ErrUnsupportedContent
	}
	if err := s.store.Upsert(ctx, chatID, userID, meta, p); err != nil {
		return fmt.Errorf("failed to capture original: %w", err)
	}
	log.WithFields(log.Fields{
		"chat_id": chatID,
		"user_id": userID,
		"type":    p.Type,
	}).Debug("original captured")
	return nil
}

// Get returns the stored original, or common.ErrNotFound.
func (s *Service) Get(ctx context.Context, chatID, userID int64) (*Original, error) {
	return s.store.Get(ctx, chatID, userID)
}

// List returns the chat's originals newest-first (meta only).
func (s *Service) List(ctx context.Context, chatID int64) ([]ListEntry, error) {
	return s.store.List(ctx, chatID)
}

// Delete removes the target's original; absent records are a no-op.
func (s *Service) Delete(ctx context.Context, chatID, userID int64) error {
	return s.store.Delete(ctx, chatID, userID)
}
