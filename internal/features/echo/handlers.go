// Package echo implements the "اکو" relay: the bot re-emits the remainder
// of the command as its own message (text, or the same media with a
// rewritten caption) and deletes the triggering message. Stateless — there
// is no repository behind it.
package echo

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/auth"
	"github.com/amirhosseinweb/tellbitj/internal/payload"
	"github.com/amirhosseinweb/tellbitj/internal/tg"
)

// Handler serves the echo command.
type Handler struct {
	authorizer *auth.Authorizer
	api        tg.API
}

// NewHandler creates the echo handler.
func NewHandler(authorizer *auth.Authorizer, api tg.API) *Handler {
	return &Handler{authorizer: authorizer, api: api}
}

// Handle relays the echo argument. If the triggering message was itself a
// reply, the relayed message replies to the same target, so the echo reads
// like the bot addressed that user directly. The trigger is deleted
// afterwards; unsupported content is silently ignored.
//
// Text messages relay the argument as plain text. Captioned media relays
// the same media with the caption replaced by the argument. Both paths also
// fire on edited messages (caption edits re-trigger the echo).
func (h *Handler) Handle(ctx context.Context, msg *tgbotapi.Message, arg string) {
	if msg.From == nil || !h.authorizer.IsManager(ctx, msg.From.ID) {
		return
	}

	replyTo := 0
	if msg.ReplyToMessage != nil {
		replyTo = msg.ReplyToMessage.MessageID
	}

	var out payload.Payload
	switch {
	case msg.Text != "":
		out = payload.Payload{Type: payload.TypeText, Text: arg}
	case msg.Caption != "":
		out = payload.FromMessage(msg)
		if !out.HasCaption() {
			// Sticker/video-note/unknown carry no caption to rewrite.
			return
		}
		out.Caption = arg
	default:
		return
	}

	if err := payload.Send(h.api, msg.Chat.ID, out, replyTo); err != nil {
		log.WithError(err).WithField("chat_id", msg.Chat.ID).Error("failed to relay echo")
		return
	}

	tg.SafeDelete(h.api, msg.Chat.ID, msg.MessageID)
}
