// service.go — roster business logic. The store interface exists so the
// service (and everything above it) can be exercised in tests without
// PostgreSQL; *Repository is the production implementation.
package managers

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Store is the persistence contract the service needs.
type Store interface {
	IsManager(ctx context.Context, userID int64) (bool, error)
	Add(ctx context.Context, userID int64) error
	List(ctx context.Context) ([]int64, error)
}

// Service manages the bot-manager roster.
type Service struct {
	store Store
}

// NewService creates the roster service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// IsManager reports whether userID is in the roster. Satisfies
// auth.ManagerDirectory.
func (s *Service) IsManager(ctx context.Context, userID int64) (bool, error) {
	return s.store.IsManager(ctx, userID)
}

// Grant adds userID to the roster. Granting twice is a no-op.
func (s *Service) Grant(ctx context.Context, userID int64) error {
	if err := s.store.Add(ctx, userID); err != nil {
		return fmt.Errorf("failed to grant manager role: %w", err)
	}
	log.WithField("user_id", userID).Info("manager role granted")
	return nil
}

// List returns every roster user id, ascending.
func (s *Service) List(ctx context.Context) ([]int64, error) {
	return s.store.List(ctx)
}
