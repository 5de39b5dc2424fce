// handlers.go — the translate commands, replied onto the message whose
// text or caption should be translated.
package translate

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/auth"
	"github.com/amirhosseinweb/tellbitj/internal/common"
	"github.com/amirhosseinweb/tellbitj/internal/tg"
)

const (
	msgNoText = "این پیام متن/کپشن ندارد که ترجمه شود."
	msgFailed = "ترجمه انجام نشد (ممکن است API محدودیت داده باشد)."
)

// Handler serves the translate commands.
type Handler struct {
	client     *Client
	authorizer *auth.Authorizer
	api        tg.API
}

// NewHandler creates the translate handler.
func NewHandler(client *Client, authorizer *auth.Authorizer, api tg.API) *Handler {
	return &Handler{client: client, authorizer: authorizer, api: api}
}

// Handle translates the replied-to message's text (or caption) into target
// ("fa" or "en", from the command phrase) and replies with the result.
func (h *Handler) Handle(ctx context.Context, msg *tgbotapi.Message, target string) {
	if msg.From == nil || !h.authorizer.IsManager(ctx, msg.From.ID) {
		return
	}

	reply, _, ok := tg.TargetFromReply(msg)
	if !ok {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, common.MsgMustReplyMessage)
		return
	}

	source := reply.Text
	if source == "" {
		source = reply.Caption
	}
	if source == "" {
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgNoText)
		return
	}

	translated, err := h.client.Translate(ctx, source, target)
	if err != nil {
		log.WithError(err).WithField("chat_id", msg.Chat.ID).Warn("translation failed")
		tg.Reply(h.api, msg.Chat.ID, msg.MessageID, msgFailed)
		return
	}

	tg.Reply(h.api, msg.Chat.ID, msg.MessageID, translated)
}
