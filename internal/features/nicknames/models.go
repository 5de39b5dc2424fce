// Package nicknames manages manager-assigned display labels for users,
// announced automatically when someone replies to the labeled user.
// models.go describes the nicknames table rows.
package nicknames

import "time"

// Nickname is one active label per (chat, user). A re-assignment replaces
// the whole record, including the display-name/username snapshot.
type Nickname struct {
	ChatID      int64     `db:"chat_id"`
	UserID      int64     `db:"user_id"`
	DisplayName string    `db:"display_name"` // target's name at write time, may go stale
	Username    string    `db:"username"`     // target's @username at write time
	Nickname    string    `db:"nickname"`     // mandatory non-empty label
	UpdatedAt   time.Time `db:"updated_at"`   // write timestamp, drives newest-first listing
}

// HolderName is the name shown in listings: the snapshotted display name,
// falling back to the username and then a generic placeholder.
func (n *Nickname) HolderName() string {
	if n.DisplayName != "" {
		return n.DisplayName
	}
	if n.Username != "" {
		return "@" + n.Username
	}
	return "کاربر"
}
