// Package auth resolves the role of an acting user and guards destructive
// actions. It is evaluated fresh on every message — roles are never cached
// across messages.
package auth

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// ManagerDirectory answers whether a user is a registered bot manager.
// Implemented by the managers service.
type ManagerDirectory interface {
	IsManager(ctx context.Context, userID int64) (bool, error)
}

// memberFetcher is the single Bot API call auth needs; *tgbotapi.BotAPI
// satisfies it.
type memberFetcher interface {
	GetChatMember(cfg tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// Protection-rule reasons shown to the user before a ban is refused.
const (
	reasonBotManager = "این کاربر مدیر ربات است و ریموو نمی‌شود."
	reasonChatAdmin  = "کاربر ادمین گروه میباشد."
)

// Authorizer enforces the role model: one configured super-admin, a stored
// manager roster, everyone else unauthorized.
type Authorizer struct {
	superAdminID int64
	managers     ManagerDirectory
	api          memberFetcher
}

// New creates an Authorizer. The super-admin id comes from configuration
// and is never stored.
func New(superAdminID int64, managers ManagerDirectory, api memberFetcher) *Authorizer {
	return &Authorizer{
		superAdminID: superAdminID,
		managers:     managers,
		api:          api,
	}
}

// IsSuperAdmin reports whether userID is the configured super-admin.
func (a *Authorizer) IsSuperAdmin(userID int64) bool {
	return userID == a.superAdminID
}

// IsManager reports whether userID may run manager-gated commands: the
// super-admin always may, everyone else must be in the roster. A roster
// read error degrades to "not a manager" — an unauthorized no-op is safer
// than acting on unknown state.
func (a *Authorizer) IsManager(ctx context.Context, userID int64) bool {
	if a.IsSuperAdmin(userID) {
		return true
	}
	ok, err := a.managers.IsManager(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("manager roster check failed")
		return false
	}
	return ok
}

// ProtectionReason returns a non-empty user-visible reason when the target
// must not be hit by a destructive action: the super-admin, a registered
// manager, or a platform-level chat administrator/creator. A failed
// GetChatMember is treated as "unknown, not admin", never as fatal.
func (a *Authorizer) ProtectionReason(ctx context.Context, chatID, targetID int64) string {
	if a.IsSuperAdmin(targetID) {
		return reasonBotManager
	}
	ok, err := a.managers.IsManager(ctx, targetID)
	if err != nil {
		// Fail closed: with the roster unreadable we cannot prove the
		// target is unprotected, so the destructive action is refused.
		log.WithError(err).WithField("user_id", targetID).Warn("manager roster check failed, refusing action")
		return reasonBotManager
	}
	if ok {
		return reasonBotManager
	}

	member, err := a.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: chatID,
			UserID: targetID,
		},
	})
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"chat_id": chatID,
			"user_id": targetID,
		}).Debug("GetChatMember failed, treating target as non-admin")
		return ""
	}
	if member.Status == "administrator" || member.Status == "creator" {
		return reasonChatAdmin
	}
	return ""
}
