// Package middleware holds the cross-cutting update-processing guards:
// incoming-message logging, panic recovery and per-user rate limiting.
package middleware

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// LogMessage logs an incoming message: user, chat and the first characters
// of its text or caption.
func LogMessage(message *tgbotapi.Message) {
	if message == nil || message.From == nil || message.Chat == nil {
		return
	}

	text := message.Text
	if text == "" {
		text = message.Caption
	}

	log.WithFields(log.Fields{
		"user_id":  message.From.ID,
		"chat_id":  message.Chat.ID,
		"username": message.From.UserName,
		"text":     truncate(text, 50),
	}).Debug("incoming message")
}

// truncate caps the text at max runes. Counting runes, not bytes, keeps
// multi-byte Persian text valid UTF-8 in the log field.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
