// handlers.go — the original-snapshot commands: "ثبت اصل" (capture),
// "اصل" (replay), "لیست اصل" and "حذف اصل".
package originals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/auth"
	"github.com/amirhosseinweb/tellbitj/internal/common"
	"github.com/amirhosseinweb/tellbitj/internal/payload"
	"github.com/amirhosseinweb/tellbitj/internal/tg"
)

const (
	msgUnsupported = "این نوع پیام برای ثبت اصل پشتیبانی نمی‌شود."
	msgCaptured    = "اصل کاربر (%s) ثبت شد."
	msgNoneStored  = "برای این کاربر «اصل» ثبت نشده است."
	msgListEmpty   = "هیچ «اصل»ی ثبت نشده است."
	msgListLine    = "اصل کاربر \"%s\" : \"%s\""
	msgDeleted     = "«اصل» کاربر حذف شد."
)

// Handler serves the original-snapshot commands.
type Handler struct {
	service    *Service
	authorizer *auth.Authorizer
	api        tg.API
}

// NewHandler creates the originals command handler.
func NewHandler(service *Service, authorizer *auth.Authorizer, api tg.API) *Handler {
	return &Handler{service: service, authorizer: authorizer, api: api}
}

// HandleCapture — "ثبت اصل" as a reply to the message being snapshotted.
func (h *Handler) HandleCapture(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !h.authorizer.IsManager(ctx, msg.From.ID) {
		return
	}

	reply, target, ok := tg.TargetFromReply(msg)
	if !ok {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, common.MsgMustReply)
		return
	}

	meta := tg.Meta(target)
	p := payload.FromMessage(reply)
	if err := h.service.Capture(ctx, msg.Chat.ID, target.ID, meta, p); err != nil {
		if errors.Is(err, common.ErrUnsupportedContent) {
			tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgUnsupported)
			return
		}
		log.WithError(err).WithField("user_id", target.ID).Error("failed to capture original")
		return
	}

	tg.Reply(h.api, msg.Chat.ID, msg.MessageID, fmt.Sprintf(msgCaptured, meta.DisplayName))
}

// HandleReplay — "اصل" as a reply to any message of the target. Re-emits
// the stored content as a reply to the triggering command.
func (h *Handler) HandleReplay(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !h.authorizer.IsManager(ctx, msg.From.ID) {
		return
	}

	_, target, ok := tg.TargetFromReply(msg)
	if !ok {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, common.MsgMustReply)
		return
	}

	original, err := h.service.Get(ctx, msg.Chat.ID, target.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgNoneStored)
			return
		}
		log.WithError(err).WithField("user_id", target.ID).Error("failed to read original")
		return
	}

	if err := payload.Send(h.api, msg.Chat.ID, original.Payload(), msg.MessageID); err != nil {
		log.WithError(err).WithField("user_id", target.ID).Error("failed to replay original")
	}
}

// HandleList — "لیست اصل". Newest captures first, one Persian type label
// per line.
func (h *Handler) HandleList(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !h.authorizer.IsManager(ctx, msg.From.ID) {
		return
	}

	entries, err := h.service.List(ctx, msg.Chat.ID)
	if err != nil {
		log.WithError(err).WithField("chat_id", msg.Chat.ID).Error("failed to list originals")
		return
	}
	if len(entries) == 0 {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgListEmpty)
		return
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf(msgListLine, e.OwnerName(), payload.Label(e.Type)))
	}
	tg.Reply(h.api, msg.Chat.ID, msg.MessageID, strings.Join(lines, "\n"))
}

// HandleDelete — "حذف اصل" as a reply to the target's message.
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
		log.WithError(err).WithField("user_id", target.ID).Error("failed to delete original")
		return
	}
	tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgDeleted)
}
