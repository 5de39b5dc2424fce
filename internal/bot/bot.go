// Package bot contains the dispatch core: the long-polling loop, the
// per-message guards and the routing from classified command to handler.
//
// Updates are handled strictly one at a time, in arrival order — handling
// of one message completes (or times out) before the next one is read.
// Within a handler the only suspension points are transport and
// collaborator calls, so the outbound actions of a single invocation are
// sequential and deterministic.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/bot/filters"
	"github.com/amirhosseinweb/tellbitj/internal/bot/middleware"
	"github.com/amirhosseinweb/tellbitj/internal/command"
	"github.com/amirhosseinweb/tellbitj/internal/config"
	"github.com/amirhosseinweb/tellbitj/internal/features/calendar"
	"github.com/amirhosseinweb/tellbitj/internal/features/echo"
	"github.com/amirhosseinweb/tellbitj/internal/features/managers"
	"github.com/amirhosseinweb/tellbitj/internal/features/moderation"
	"github.com/amirhosseinweb/tellbitj/internal/features/nicknames"
	"github.com/amirhosseinweb/tellbitj/internal/features/originals"
	"github.com/amirhosseinweb/tellbitj/internal/features/translate"
)

// Bot ties the transport, the guards and the feature handlers together.
type Bot struct {
	api *tgbotapi.BotAPI
	cfg *config.Config

	rateLimiter *middleware.RateLimiter

	nicknameHandler   *nicknames.Handler
	originalHandler   *originals.Handler
	echoHandler       *echo.Handler
	moderationHandler *moderation.Handler
	managerHandler    *managers.Handler
	translateHandler  *translate.Handler
	calendarHandler   *calendar.Handler
}

// New creates the bot with all its dependencies.
func New(
	api *tgbotapi.BotAPI,
	cfg *config.Config,
	nicknameHandler *nicknames.Handler,
	originalHandler *originals.Handler,
	echoHandler *echo.Handler,
	moderationHandler *moderation.Handler,
	managerHandler *managers.Handler,
	translateHandler *translate.Handler,
	calendarHandler *calendar.Handler,
) *Bot {
	return &Bot{
		api:               api,
		cfg:               cfg,
		rateLimiter:       middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		nicknameHandler:   nicknameHandler,
		originalHandler:   originalHandler,
		echoHandler:       echoHandler,
		moderationHandler: moderationHandler,
		managerHandler:    managerHandler,
		translateHandler:  translateHandler,
		calendarHandler:   calendarHandler,
	}
}

// Start runs the long-polling loop until the context is cancelled.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.BotUpdateTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	log.WithField("timeout_sec", b.cfg.BotUpdateTimeoutSeconds).Info("bot started, waiting for messages")

	for {
		select {
		case <-ctx.Done():
			log.Info("bot stopping (ctx done)")
			b.api.StopReceivingUpdates()
			b.rateLimiter.Close()
			return

		case update, ok := <-updates:
			if !ok {
				log.Info("updates channel closed, bot stopped")
				b.rateLimiter.Close()
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate processes one update under the panic guard and the
// per-message wall-time cap. A timeout abandons the invocation; state-store
// writes already committed stay committed.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer middleware.RecoverFromPanic()

	ctx, cancel := context.WithTimeout(ctx, b.cfg.BotHandlerTimeout)
	defer cancel()

	// Caption edits on media re-trigger the echo command only.
	if update.EditedMessage != nil {
		b.handleEdited(ctx, update.EditedMessage)
		return
	}

	msg := update.Message
	if !filters.GroupOnly(msg) {
		return
	}

	middleware.LogMessage(msg)

	if !b.rateLimiter.Allow(msg.From.ID) {
		log.WithField("user_id", msg.From.ID).Debug("rate limited")
		return
	}

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	cmd, isCommand := command.Classify(text)

	// Passive nickname announcement on replies — suppressed for every
	// recognized command so the two behaviors never both fire.
	if msg.ReplyToMessage != nil && !isCommand {
		b.nicknameHandler.HandleAutoNotice(ctx, msg)
		return
	}

	if isCommand {
		b.routeCommand(ctx, msg, cmd)
	}
}

// handleEdited mirrors the original bot: an edited group message only ever
// re-runs echo (covers fixing a typo in an echo caption).
func (b *Bot) handleEdited(ctx context.Context, msg *tgbotapi.Message) {
	if !filters.GroupOnly(msg) {
		return
	}

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}
	if cmd, ok := command.Classify(text); ok && cmd.Kind == command.KindEcho {
		b.echoHandler.Handle(ctx, msg, cmd.Arg)
	}
}

// routeCommand maps a classified command onto its handler. Authorization
// and precondition checks live inside the handlers.
func (b *Bot) routeCommand(ctx context.Context, msg *tgbotapi.Message, cmd command.Command) {
	log.WithFields(log.Fields{
		"kind":    cmd.Kind,
		"arg":     cmd.Arg,
		"chat_id": msg.Chat.ID,
		"user_id": msg.From.ID,
	}).Debug("routing command")

	switch cmd.Kind {
	case command.KindSetNickname:
		b.nicknameHandler.HandleSet(ctx, msg, cmd.Arg)
	case command.KindListNicknames:
		b.nicknameHandler.HandleList(ctx, msg)
	case command.KindDeleteNickname:
		b.nicknameHandler.HandleDelete(ctx, msg)

	case command.KindCaptureOriginal:
		b.originalHandler.HandleCapture(ctx, msg)
	case command.KindReplayOriginal:
		b.originalHandler.HandleReplay(ctx, msg)
	case command.KindListOriginals:
		b.originalHandler.HandleList(ctx, msg)
	case command.KindDeleteOriginal:
		b.originalHandler.HandleDelete(ctx, msg)

	case command.KindEcho:
		b.echoHandler.Handle(ctx, msg, cmd.Arg)

	case command.KindBan:
		b.moderationHandler.HandleBan(ctx, msg)

	case command.KindSetManager:
		b.managerHandler.HandleSetManager(ctx, msg)
	case command.KindTagManagers:
		b.managerHandler.HandleTagManagers(ctx, msg)

	case command.KindTranslateFa:
		b.translateHandler.Handle(ctx, msg, translate.LangPersian)
	case command.KindTranslateEn:
		b.translateHandler.Handle(ctx, msg, translate.LangEnglish)

	case command.KindCalendar:
		b.calendarHandler.Handle(ctx, msg)
	}
}

// SendToChat sends a plain message to a chat. Used by the scheduler for
// the daily announcement.
func (b *Bot) SendToChat(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}
