// Package filters decides which updates the bot reacts to at all.
package filters

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// GroupOnly reports whether the message comes from a group or supergroup
// with a real sender. The bot is a group moderator: DMs, channels and
// service messages are ignored.
func GroupOnly(message *tgbotapi.Message) bool {
	if message == nil || message.Chat == nil {
		return false
	}
	if message.From == nil {
		log.WithFields(log.Fields{
			"component": "ChatFilter",
			"chat_id":   message.Chat.ID,
			"chat_type": message.Chat.Type,
		}).Debug("skip: no sender (service/channel message?)")
		return false
	}
	return message.Chat.IsGroup() || message.Chat.IsSuperGroup()
}
