// repository.go owns all SQL against the originals table.
package originals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amirhosseinweb/tellbitj/internal/common"
	"github.com/amirhosseinweb/tellbitj/internal/payload"
	"github.com/amirhosseinweb/tellbitj/internal/tg"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or fully replaces the original keyed by (chat_id, user_id).
func (r *Repository) Upsert(ctx context.Context, chatID, userID int64, meta tg.UserMeta, p payload.Payload) error {
	query := `
		INSERT INTO originals (chat_id, user_id, display_name, username, type, text, file_id, caption, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (chat_id, user_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    username = EXCLUDED.username,
		    type = EXCLUDED.type,
		    text = EXCLUDED.text,
		    file_id = EXCLUDED.file_id,
		    caption = EXCLUDED.caption,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query,
		chatID, userID, meta.DisplayName, meta.Username,
		string(p.Type), p.Text, p.FileID, p.Caption, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert original (chat=%d user=%d): %w", chatID, userID, err)
	}
	return nil
}

// Get returns the stored original; common.ErrNotFound when absent.
func (r *Repository) Get(ctx context.Context, chatID, userID int64) (*Original, error) {
	query := `
		SELECT chat_id, user_id, COALESCE(display_name, ''), COALESCE(username, ''),
		       type, COALESCE(text, ''), COALESCE(file_id, ''), COALESCE(caption, ''), updated_at
		FROM originals
		WHERE chat_id = $1 AND user_id = $2
	`
	var o Original
	var typ string
	err := r.db.QueryRow(ctx, query, chatID, userID).Scan(
		&o.ChatID, &o.UserID, &o.DisplayName, &o.Username,
		&typ, &o.Text, &o.FileID, &o.Caption, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read original (chat=%d user=%d): %w", chatID, userID, err)
	}
	o.Type = payload.Type(typ)
	return &o, nil
}

// List returns the chat's originals newest-first, content fields excluded.
func (r *Repository) List(ctx context.Context, chatID int64) ([]ListEntry, error) {
	query := `
		SELECT user_id, COALESCE(display_name, ''), COALESCE(username, ''), type, updated_at
		FROM originals
		WHERE chat_id = $1
		ORDER BY updated_at DESC, user_id ASC
	`
	rows, err := r.db.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list originals (chat=%d): %w", chatID, err)
	}
	defer rows.Close()

	var out []ListEntry
	for rows.Next() {
		var e ListEntry
		var typ string
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.Username, &typ, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan original row: %w", err)
		}
		e.Type = payload.Type(typ)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read original rows: %w", err)
	}
	return out, nil
}

// Delete removes the original; deleting an absent record is a no-op.
func (r *Repository) Delete(ctx context.Context, chatID, userID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM originals WHERE chat_id = $1 AND user_id = $2`,
		chatID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete original (chat=%d user=%d): %w", chatID, userID, err)
	}
	return nil
}
