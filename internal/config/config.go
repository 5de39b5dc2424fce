// Package config loads the bot configuration from environment variables.
// envconfig maps the variables onto the Config struct fields.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds ALL application settings.
type Config struct {
	// --- Telegram ---
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	// The single identity with unconditional manager access and the
	// exclusive right to grant manager status. Never stored in the DB.
	SuperAdminID int64 `envconfig:"SUPER_ADMIN_ID" required:"true"`

	// --- Database ---
	// Inside Docker "localhost" is almost always wrong; default to the
	// docker-compose service name and override DB_HOST=localhost locally.
	DBHost     string `envconfig:"DB_HOST" default:"postgres"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"botuser"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" default:"tellbitj"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"debug"`
	// Timezone for the calendar command and the daily announcement.
	AppTimezone string `envconfig:"APP_TIMEZONE" default:"Asia/Tehran"`

	// --- Bot runtime ---
	// Long polling timeout (seconds).
	BotUpdateTimeoutSeconds int `envconfig:"BOT_UPDATE_TIMEOUT_SECONDS" default:"60"`
	// Wall-time cap for handling one message. A timeout abandons the
	// invocation; state-store writes already committed stay committed.
	BotHandlerTimeout time.Duration `envconfig:"BOT_HANDLER_TIMEOUT" default:"30s"`

	// --- Rate limiting ---
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"20"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// --- Translation ---
	TranslateBaseURL string        `envconfig:"TRANSLATE_BASE_URL" default:"https://api.mymemory.translated.net/get"`
	TranslateTimeout time.Duration `envconfig:"TRANSLATE_TIMEOUT" default:"10s"`

	// --- Daily announcement ---
	// Chat that receives the morning calendar post. 0 disables the job.
	AnnounceChatID int64 `envconfig:"ANNOUNCE_CHAT_ID" default:"0"`
}

// DatabaseDSN returns the PostgreSQL connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Validate checks the settings envconfig cannot express.
func (c *Config) Validate() error {
	if c.SuperAdminID == 0 {
		return fmt.Errorf("SUPER_ADMIN_ID is missing or 0")
	}
	if c.BotUpdateTimeoutSeconds <= 0 {
		return fmt.Errorf("BOT_UPDATE_TIMEOUT_SECONDS must be > 0")
	}
	if c.BotHandlerTimeout <= 0 {
		return fmt.Errorf("BOT_HANDLER_TIMEOUT must be > 0")
	}
	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("invalid DB_MIN_CONNS/DB_MAX_CONNS")
	}
	if _, err := time.LoadLocation(c.AppTimezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.AppTimezone, err)
	}
	return nil
}

// Load reads the environment and fills the Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
