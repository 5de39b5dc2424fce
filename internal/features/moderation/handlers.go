// Package moderation implements the ban command ("سیک", "بن", "ban",
// "sik"): removing the target of the replied-to message from the group,
// guarded by the protection rule for managers and chat admins.
package moderation

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/auth"
	"github.com/amirhosseinweb/tellbitj/internal/common"
	"github.com/amirhosseinweb/tellbitj/internal/tg"
)

const (
	msgBanned    = "کاربر با موفقیت از گروه حذف شد."
	msgBanFailed = "خطا: بات دسترسی کافی برای حذف کاربر ندارد یا عملیات ممکن نیست."
)

// Handler serves the ban command.
type Handler struct {
	authorizer *auth.Authorizer
	api        tg.API
}

// NewHandler creates the moderation handler.
func NewHandler(authorizer *auth.Authorizer, api tg.API) *Handler {
	return &Handler{authorizer: authorizer, api: api}
}

// HandleBan bans the author of the replied-to message. Protected targets
// (super-admin, roster managers, chat admins) are refused with the reason
// before any transport call; a transport failure becomes a generic reply.
func (h *Handler) HandleBan(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !h.authorizer.IsManager(ctx, msg.From.ID) {
		return
	}

	_, target, ok := tg.TargetFromReply(msg)
	if !ok {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, common.MsgMustReply)
		return
	}

	if reason := h.authorizer.ProtectionReason(ctx, msg.Chat.ID, target.ID); reason != "" {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, reason)
		return
	}

	banCfg := tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: msg.Chat.ID,
			UserID: target.ID,
		},
	}
	if _, err := h.api.Request(banCfg); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"chat_id": msg.Chat.ID,
			"user_id": target.ID,
		}).Warn("ban request failed")
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgBanFailed)
		return
	}

	log.WithFields(log.Fields{
		"chat_id": msg.Chat.ID,
		"user_id": target.ID,
		"by":      msg.From.ID,
	}).Info("user banned")
	tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgBanned)
}
