// Package managers maintains the bot-manager roster: the users granted
// elevated command access by the super-admin. Membership is the whole
// payload — a roster entry is just the user id, so no model type exists.
//
// repository.go owns all SQL against the managers table. Each method runs
// a single query; a write is committed before the method returns.
package managers

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// IsManager reports roster membership.
func (r *Repository) IsManager(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM managers WHERE user_id = $1)`, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check manager (user_id=%d): %w", userID, err)
	}
	return exists, nil
}

// Add inserts a user into the roster. Idempotent: inserting an existing
// manager is a no-op, not an error.
func (r *Repository) Add(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO managers (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to add manager (user_id=%d): %w", userID, err)
	}
	return nil
}

// List returns every roster user id in ascending order.
func (r *Repository) List(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM managers ORDER BY user_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan manager row: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manager rows: %w", err)
	}
	return out, nil
}
