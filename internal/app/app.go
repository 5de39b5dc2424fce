// Package app initializes every component of the application.
// app.go is the assembly point: DB pool, repositories, services, handlers,
// the authorizer and the bot itself, wired in dependency order.
package app

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/auth"
	"github.com/amirhosseinweb/tellbitj/internal/bot"
	"github.com/amirhosseinweb/tellbitj/internal/config"
	"github.com/amirhosseinweb/tellbitj/internal/db/postgres"
	"github.com/amirhosseinweb/tellbitj/internal/features/calendar"
	"github.com/amirhosseinweb/tellbitj/internal/features/echo"
	"github.com/amirhosseinweb/tellbitj/internal/features/managers"
	"github.com/amirhosseinweb/tellbitj/internal/features/moderation"
	"github.com/amirhosseinweb/tellbitj/internal/features/nicknames"
	"github.com/amirhosseinweb/tellbitj/internal/features/originals"
	"github.com/amirhosseinweb/tellbitj/internal/features/translate"
	"github.com/amirhosseinweb/tellbitj/internal/jobs"
)

// App holds every top-level component.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler
	DB        *pgxpool.Pool
	BotAPI    *tgbotapi.BotAPI
}

// New creates and initializes the application. Initialization order
// matters — components depend on each other.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. Database ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := runMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	// === 2. Telegram Bot API ===
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create Telegram API client: %w", err)
	}
	botAPI.Debug = cfg.AppEnv == "development"
	log.Infof("authorized as @%s", botAPI.Self.UserName)

	// === 3. Repositories ===
	managerRepo := managers.NewRepository(pool)
	nicknameRepo := nicknames.NewRepository(pool)
	originalRepo := originals.NewRepository(pool)

	// === 4. Services ===
	managerService := managers.NewService(managerRepo)
	nicknameService := nicknames.NewService(nicknameRepo)
	originalService := originals.NewService(originalRepo)
	calendarService, err := calendar.NewService(cfg.AppTimezone)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("calendar init failed: %w", err)
	}
	translateClient := translate.NewClient(cfg.TranslateBaseURL, &http.Client{Timeout: cfg.TranslateTimeout})

	// === 5. Authorization ===
	authorizer := auth.New(cfg.SuperAdminID, managerService, botAPI)

	// === 6. Handlers ===
	nicknameHandler := nicknames.NewHandler(nicknameService, authorizer, botAPI)
	originalHandler := originals.NewHandler(originalService, authorizer, botAPI)
	echoHandler := echo.NewHandler(authorizer, botAPI)
	moderationHandler := moderation.NewHandler(authorizer, botAPI)
	managerHandler := managers.NewHandler(managerService, authorizer, botAPI, cfg.SuperAdminID)
	translateHandler := translate.NewHandler(translateClient, authorizer, botAPI)
	calendarHandler := calendar.NewHandler(calendarService, authorizer, botAPI)

	// === 7. Bot ===
	b := bot.New(
		botAPI, cfg,
		nicknameHandler,
		originalHandler,
		echoHandler,
		moderationHandler,
		managerHandler,
		translateHandler,
		calendarHandler,
	)

	// === 8. Scheduler ===
	scheduler, err := jobs.NewScheduler(calendarService, cfg.AppTimezone, cfg.AnnounceChatID, b.SendToChat)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("scheduler init failed: %w", err)
	}

	return &App{
		Bot:       b,
		Scheduler: scheduler,
		DB:        pool,
		BotAPI:    botAPI,
	}, nil
}

// runMigrations applies the embedded SQL migrations in order.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := postgres.EnsureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Managers},
		{2, migration002Nicknames},
		{3, migration003Originals},
		{4, migration004MetaColumns},
	}

	for _, m := range migrations {
		if err := postgres.ExecMigrationSQL(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("migration %d: %w", m.version, err)
		}
		log.Infof("migration %d applied", m.version)
	}

	return nil
}

// SQL migrations are embedded in the binary to keep deployment to a single
// container image.

var migration001Managers = `
CREATE TABLE IF NOT EXISTS managers (
    user_id BIGINT PRIMARY KEY,
    created_at TIMESTAMP DEFAULT NOW()
);
`

var migration002Nicknames = `
CREATE TABLE IF NOT EXISTS nicknames (
    chat_id BIGINT NOT NULL,
    user_id BIGINT NOT NULL,
    display_name TEXT,
    username TEXT,
    nickname TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (chat_id, user_id)
);
CREATE INDEX IF NOT EXISTS idx_nicknames_chat_updated ON nicknames(chat_id, updated_at DESC);
`

var migration003Originals = `
CREATE TABLE IF NOT EXISTS originals (
    chat_id BIGINT NOT NULL,
    user_id BIGINT NOT NULL,
    display_name TEXT,
    username TEXT,
    type TEXT NOT NULL,
    text TEXT,
    file_id TEXT,
    caption TEXT,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (chat_id, user_id)
);
CREATE INDEX IF NOT EXISTS idx_originals_chat_updated ON originals(chat_id, updated_at DESC);
`

// Databases created before the display-name/username snapshot existed get
// the columns added in place; pre-existing rows read back as absent.
var migration004MetaColumns = `
ALTER TABLE nicknames ADD COLUMN IF NOT EXISTS display_name TEXT;
ALTER TABLE nicknames ADD COLUMN IF NOT EXISTS username TEXT;
ALTER TABLE originals ADD COLUMN IF NOT EXISTS display_name TEXT;
ALTER TABLE originals ADD COLUMN IF NOT EXISTS username TEXT;
`
