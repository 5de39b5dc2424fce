// handlers.go — the nickname commands ("تنظیم لقب", "لیست لقب",
// "حذف لقب") and the passive announcement on replies.
package nicknames

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/auth"
	"github.com/amirhosseinweb/tellbitj/internal/common"
	"github.com/amirhosseinweb/tellbitj/internal/tg"
)

const (
	msgArgRequired = "بعد از «تنظیم لقب» متن لقب را بنویس."
	msgSet         = "لقب کاربر (%s) به «%s» تنظیم شد."
	msgListEmpty   = "هیچ لقبی ثبت نشده است."
	msgListLine    = "لقب کاربر \"%s\" : \"%s\""
	msgDeleted     = "لقب کاربر حذف شد."
	msgAutoNotice  = "لقب کاربر: %s می‌باشد"
)

// Handler serves the nickname commands.
type Handler struct {
	service    *Service
	authorizer *auth.Authorizer
	api        tg.API
}

// NewHandler creates the nickname command handler.
func NewHandler(service *Service, authorizer *auth.Authorizer, api tg.API) *Handler {
	return &Handler{service: service, authorizer: authorizer, api: api}
}

// HandleSet — "تنظیم لقب <لقب>" as a reply to the target's message.
func (h *Handler) HandleSet(ctx context.Context, msg *tgbotapi.Message, arg string) {
	if msg.From == nil || !h.authorizer.IsManager(ctx, msg.From.ID) {
		return
	}

	_, target, ok := tg.TargetFromReply(msg)
	if !ok {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, common.MsgMustReply)
		return
	}

	meta := tg.Meta(target)
	if err := h.service.Set(ctx, msg.Chat.ID, target.ID, meta, arg); err != nil {
		if errors.Is(err, ErrEmptyNickname) {
			tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgArgRequired)
			return
		}
		log.WithError(err).WithField("user_id", target.ID).Error("failed to set nickname")
		return
	}

	tg.Reply(h.api, msg.Chat.ID, msg.MessageID, fmt.Sprintf(msgSet, meta.DisplayName, arg))
}

// HandleList — "لیست لقب". Newest assignments first.
func (h *Handler) HandleList(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !h.authorizer.IsManager(ctx, msg.From.ID) {
		return
	}

	records, err := h.service.List(ctx, msg.Chat.ID)
	if err != nil {
		log.WithError(err).WithField("chat_id", msg.Chat.ID).Error("failed to list nicknames")
		return
	}
	if len(records) == 0 {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgListEmpty)
		return
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf(msgListLine, r.HolderName(), r.Nickname))
	}
	tg.Reply(h.api, msg.Chat.ID, msg.MessageID, strings.Join(lines, "\n"))
}

// HandleDelete — "حذف لقب" as a reply to the target's message. Deleting a
// user without a nickname succeeds silently with the same confirmation.
func (h *Handler) HandleDelete(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !h.authorizer.IsManager(ctx, msg.From.ID) {
		return
	}

	_, target, ok := tg.TargetFromReply(msg)
	if !ok {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, common.MsgMustReply)
		return
	}

	if err := h.service.Delete(ctx, msg.Chat.ID, target.ID); err != nil {
		log.WithError(err).WithField("user_id", target.ID).Error("failed to delete nickname")
		return
	}
	tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgDeleted)
}

// HandleAutoNotice announces the stored nickname when someone replies to a
// labeled user. The dispatcher only calls this for non-command messages, so
// the notice and a command reply never both fire for one message. Open to
// everyone — this is a passive behavior, not a command.
func (h *Handler) HandleAutoNotice(ctx context.Context, msg *tgbotapi.Message) {
	_, target, ok := tg.TargetFromReply(msg)
	if !ok || target.IsBot {
		return
	}

	nickname, err := h.service.Get(ctx, msg.Chat.ID, target.ID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			log.WithError(err).WithField("user_id", target.ID).Warn("failed to read nickname for notice")
		}
		return
	}

	tg.Reply(h.api, msg.Chat.ID, msg.MessageID, fmt.Sprintf(msgAutoNotice, nickname))
}
