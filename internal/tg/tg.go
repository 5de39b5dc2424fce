// Package tg narrows the Telegram Bot API surface the bot actually consumes
// and gathers the helpers for working with messages and users.
//
// Handlers depend on the API interface instead of *tgbotapi.BotAPI so the
// command logic can be tested with a recording fake, without the network.
package tg

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/common"
)

// API is the slice of the Bot API the bot uses: message sends, raw requests
// (delete, ban) and member-status lookups. *tgbotapi.BotAPI satisfies it.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(cfg tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// UserMeta is the sender/target snapshot persisted together with nicknames
// and originals. It is taken at write time and may go stale.
type UserMeta struct {
	DisplayName string
	Username    string
}

// DisplayName builds a human-readable name: first+last name, falling back
// to @username and then to the numeric id.
func DisplayName(u *tgbotapi.User) string {
	if u == nil {
		return common.MsgUnknownUser
	}
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	if name != "" {
		return name
	}
	if u.UserName != "" {
		return u.UserName
	}
	return fmt.Sprintf("ID:%d", u.ID)
}

// Meta snapshots the display name and username of a user.
func Meta(u *tgbotapi.User) UserMeta {
	meta := UserMeta{DisplayName: DisplayName(u)}
	if u != nil {
		meta.Username = u.UserName
	}
	return meta
}

// TargetFromReply resolves the reply target of a command: the replied-to
// message and its author. ok is false when the triggering message is not a
// reply or the replied-to message has no sender.
func TargetFromReply(msg *tgbotapi.Message) (reply *tgbotapi.Message, target *tgbotapi.User, ok bool) {
	if msg == nil || msg.ReplyToMessage == nil || msg.ReplyToMessage.From == nil {
		return nil, nil, false
	}
	return msg.ReplyToMessage, msg.ReplyToMessage.From, true
}

// MentionMarkdownV2 renders a tg://user deep-link mention with the name
// escaped for MarkdownV2.
func MentionMarkdownV2(userID int64, name string) string {
	if name == "" {
		name = common.MsgUnknownUser
	}
	return fmt.Sprintf("[%s](tg://user?id=%d)", tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, name), userID)
}

// SafeDelete deletes a message and swallows the error: losing a delete
// (no rights, message too old) must never fail the command that asked for it.
func SafeDelete(api API, chatID int64, messageID int) {
	if _, err := api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"chat_id":    chatID,
			"message_id": messageID,
		}).Debug("delete message failed, ignoring")
	}
}

// Reply sends text as a reply to the given message id.
func Reply(api API, chatID int64, replyTo int, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyTo
	if _, err := api.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send reply")
	}
}

// SendText sends a plain message to a chat.
func SendText(api API, chatID int64, text string) {
	if _, err := api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}
