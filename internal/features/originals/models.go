// Package originals captures a snapshot of a user's message content (the
// "original") for later on-demand replay.
// models.go describes the originals table rows.
package originals

import (
	"time"

	"github.com/amirhosseinweb/tellbitj/internal/payload"
)

// Original is one stored snapshot per (chat, user), fully overwritten on
// re-capture. Which of Text/FileID/Caption are populated depends on Type.
type Original struct {
	ChatID      int64        `db:"chat_id"`
	UserID      int64        `db:"user_id"`
	DisplayName string       `db:"display_name"` // owner's name at capture time
	Username    string       `db:"username"`     // owner's @username at capture time
	Type        payload.Type `db:"type"`         // never TypeUnknown (rejected before persistence)
	Text        string       `db:"text"`
	FileID      string       `db:"file_id"`
	Caption     string       `db:"caption"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

// Payload reassembles the stored content for replay.
func (o *Original) Payload() payload.Payload {
	return payload.Payload{
		Type:    o.Type,
		Text:    o.Text,
		FileID:  o.FileID,
		Caption: o.Caption,
	}
}

// ListEntry is the compact listing projection: content fields excluded.
type ListEntry struct {
	UserID      int64
	DisplayName string
	Username    string
	Type        payload.Type
	UpdatedAt   time.Time
}

// OwnerName is the name shown in listings.
func (e *ListEntry) OwnerName() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	if e.Username != "" {
		return "@" + e.Username
	}
	return "کاربر"
}
