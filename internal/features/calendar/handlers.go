// handlers.go — the "امروز"/"تقویم" command and the text rendering shared
// with the daily announcement job.
package calendar

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amirhosseinweb/tellbitj/internal/auth"
	"github.com/amirhosseinweb/tellbitj/internal/common"
	"github.com/amirhosseinweb/tellbitj/internal/tg"
)

// Handler serves the calendar command.
type Handler struct {
	service    *Service
	authorizer *auth.Authorizer
	api        tg.API
}

// NewHandler creates the calendar handler.
func NewHandler(service *Service, authorizer *auth.Authorizer, api tg.API) *Handler {
	return &Handler{service: service, authorizer: authorizer, api: api}
}

// Handle replies with today's date in all three calendars.
func (h *Handler) Handle(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !h.authorizer.IsManager(ctx, msg.From.ID) {
		return
	}
	tg.Reply(h.api, msg.Chat.ID, msg.MessageID, RenderSummary(h.service.Now()))
}

// RenderSummary renders a summary as the Persian multi-line message, with
// Persian digits.
func RenderSummary(s Summary) string {
	out := fmt.Sprintf(
		"شمسی: %s\nقمری: %s\nمیلادی: %s\nساعت: %s (%s)",
		s.Persian, s.Hijri, s.Gregorian, s.Time, s.Timezone,
	)
	return common.ToPersianDigits(out)
}
