// repository.go owns all SQL against the nicknames table.
package nicknames

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amirhosseinweb/tellbitj/internal/common"
	"github.com/amirhosseinweb/tellbitj/internal/tg"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or fully replaces the nickname keyed by (chat_id, user_id)
// and stamps updated_at with the current time.
func (r *Repository) Upsert(ctx context.Context, chatID, userID int64, meta tg.UserMeta, nickname string) error {
	query := `
		INSERT INTO nicknames (chat_id, user_id, display_name, username, nickname, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (chat_id, user_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    username = EXCLUDED.username,
		    nickname = EXCLUDED.nickname,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query,
		chatID, userID, meta.DisplayName, meta.Username, nickname, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert nickname (chat=%d user=%d): %w", chatID, userID, err)
	}
	return nil
}

// Get returns the nickname text; common.ErrNotFound when absent.
func (r *Repository) Get(ctx context.Context, chatID, userID int64) (string, error) {
	var nickname string
	err := r.db.QueryRow(ctx,
		`SELECT nickname FROM nicknames WHERE chat_id = $1 AND user_id = $2`,
		chatID, userID,
	).Scan(&nickname)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("failed to read nickname (chat=%d user=%d): %w", chatID, userID, err)
	}
	return nickname, nil
}

// List returns the chat's nicknames newest-first; ties broken by ascending
// user id for determinism.
func (r *Repository) List(ctx context.Context, chatID int64) ([]Nickname, error) {
	query := `
		SELECT chat_id, user_id, COALESCE(display_name, ''), COALESCE(username, ''), nickname, updated_at
		FROM nicknames
		WHERE chat_id = $1
		ORDER BY updated_at DESC, user_id ASC
	`
	rows, err := r.db.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list nicknames (chat=%d): %w", chatID, err)
	}
	defer rows.Close()

	var out []Nickname
	for rows.Next() {
		var n Nickname
		if err := rows.Scan(&n.ChatID, &n.UserID, &n.DisplayName, &n.Username, &n.Nickname, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan nickname row: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read nickname rows: %w", err)
	}
	return out, nil
}

// Delete removes the nickname; deleting an absent record is a no-op.
func (r *Repository) Delete(ctx context.Context, chatID, userID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM nicknames WHERE chat_id = $1 AND user_id = $2`,
		chatID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete nickname (chat=%d user=%d): %w", chatID, userID, err)
	}
	return nil
}
