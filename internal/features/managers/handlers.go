// handlers.go — the manager-roster commands: "تنظیم مدیر" (super-admin
// grants the role) and "تگ" (mention every manager).
package managers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/auth"
	"github.com/amirhosseinweb/tellbitj/internal/common"
	"github.com/amirhosseinweb/tellbitj/internal/tg"
)

const (
	msgGranted     = "کاربر (%s) به مدیران ربات اضافه شد."
	msgTagReply    = "دستور «تگ» باید روی پیام ریپلای شود."
	msgNobodyToTag = "مدیر دیگری برای تگ کردن وجود ندارد."
)

// Handler serves the roster commands.
type Handler struct {
	service      *Service
	authorizer   *auth.Authorizer
	api          tg.API
	superAdminID int64
}

// NewHandler creates the roster command handler.
func NewHandler(service *Service, authorizer *auth.Authorizer, api tg.API, superAdminID int64) *Handler {
	return &Handler{
		service:      service,
		authorizer:   authorizer,
		api:          api,
		superAdminID: superAdminID,
	}
}

// HandleSetManager — "تنظیم مدیر". Super-admin only; anyone else is a
// silent no-op. The target comes from the replied-to message.
func (h *Handler) HandleSetManager(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !h.authorizer.IsSuperAdmin(msg.From.ID) {
		return
	}

	_, target, ok := tg.TargetFromReply(msg)
	if !ok {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, common.MsgMustReply)
		return
	}

	if err := h.service.Grant(ctx, target.ID); err != nil {
		log.WithError(err).WithField("user_id", target.ID).Error("failed to grant manager role")
		return
	}

	tg.Reply(h.api, msg.Chat.ID, msg.MessageID, fmt.Sprintf(msgGranted, tg.DisplayName(target)))
}

// HandleTagManagers — "تگ". Mentions every manager (roster plus the
// super-admin) except the sender, as a reply to the message the command
// replied to.
func (h *Handler) HandleTagManagers(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !h.authorizer.IsManager(ctx, msg.From.ID) {
		return
	}

	if msg.ReplyToMessage == nil {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgTagReply)
		return
	}

	roster, err := h.service.List(ctx)
	if err != nil {
		log.WithError(err).Error("failed to list managers")
		return
	}

	ids := make(map[int64]struct{}, len(roster)+1)
	for _, id := range roster {
		ids[id] = struct{}{}
	}
	// The super-admin is always part of the manager set.
	ids[h.superAdminID] = struct{}{}
	// Never tag whoever asked for the tag.
	delete(ids, msg.From.ID)

	if len(ids) == 0 {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgNobodyToTag)
		return
	}

	ordered := make([]int64, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	// Stable mention order regardless of map iteration.
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	mentions := make([]string, 0, len(ordered))
	for _, id := range ordered {
		mentions = append(mentions, tg.MentionMarkdownV2(id, h.memberName(msg.Chat.ID, id)))
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, strings.Join(mentions, "  "))
	out.ReplyToMessageID = msg.ReplyToMessage.MessageID
	out.ParseMode = tgbotapi.ModeMarkdownV2
	out.DisableWebPagePreview = true
	if _, err := h.api.Send(out); err != nil {
		log.WithError(err).WithField("chat_id", msg.Chat.ID).Error("failed to send manager tags")
	}
}

// memberName resolves a chat member's display name for a prettier mention;
// a lookup failure falls back to the numeric id (the mention still works).
func (h *Handler) memberName(chatID, userID int64) string {
	member, err := h.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: userID},
	})
	if err != nil || member.User == nil {
		return fmt.Sprintf("ID:%d", userID)
	}
	return tg.DisplayName(member.User)
}
