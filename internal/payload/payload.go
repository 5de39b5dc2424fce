// Package payload models the content of a Telegram message as a tagged
// union: one Type per supported content kind plus the locator and optional
// caption that kind carries. The same model is used to capture a user's
// "original" for later replay and to re-emit stored or echoed content.
package payload

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Type tags the content kind of a payload.
type Type string

const (
	TypeText      Type = "text"
	TypePhoto     Type = "photo"
	TypeVideo     Type = "video"
	TypeVoice     Type = "voice"
	TypeAudio     Type = "audio"
	TypeDocument  Type = "document"
	TypeAnimation Type = "animation"
	TypeSticker   Type = "sticker"
	TypeVideoNote Type = "video_note"
	TypeUnknown   Type = "unknown"
)

// Payload is the tagged union. Text is populated for TypeText only; FileID
// for every media type; Caption for the captionable media types (photo,
// video, voice, audio, document, animation). TypeUnknown carries nothing.
type Payload struct {
	Type    Type
	Text    string
	FileID  string
	Caption string
}

// msgUnsendable is the refusal notice emitted instead of a TypeUnknown
// payload — never fail silently on replay.
const msgUnsendable = "این نوع پیام قابل ارسال نیست."

// FromMessage builds a payload from an inbound message, selecting the first
// populated content field in fixed priority order: text, photo, video,
// voice, audio, document, animation, sticker, video note. Anything else
// (polls, contacts, locations, ...) is TypeUnknown.
func FromMessage(msg *tgbotapi.Message) Payload {
	if msg == nil {
		return Payload{Type: TypeUnknown}
	}

	switch {
	case msg.Text != "":
		return Payload{Type: TypeText, Text: msg.Text}
	case len(msg.Photo) > 0:
		return Payload{Type: TypePhoto, FileID: largestPhoto(msg.Photo), Caption: msg.Caption}
	case msg.Video != nil:
		return Payload{Type: TypeVideo, FileID: msg.Video.FileID, Caption: msg.Caption}
	case msg.Voice != nil:
		return Payload{Type: TypeVoice, FileID: msg.Voice.FileID, Caption: msg.Caption}
	case msg.Audio != nil:
		return Payload{Type: TypeAudio, FileID: msg.Audio.FileID, Caption: msg.Caption}
	case msg.Document != nil:
		return Payload{Type: TypeDocument, FileID: msg.Document.FileID, Caption: msg.Caption}
	case msg.Animation != nil:
		return Payload{Type: TypeAnimation, FileID: msg.Animation.FileID, Caption: msg.Caption}
	case msg.Sticker != nil:
		return Payload{Type: TypeSticker, FileID: msg.Sticker.FileID}
	case msg.VideoNote != nil:
		return Payload{Type: TypeVideoNote, FileID: msg.VideoNote.FileID}
	default:
		return Payload{Type: TypeUnknown}
	}
}

// largestPhoto picks the highest-resolution variant Telegram offers.
func largestPhoto(sizes []tgbotapi.PhotoSize) string {
	best := sizes[0]
	for _, s := range sizes[1:] {
		if s.Width*s.Height > best.Width*best.Height {
			best = s
		}
	}
	return best.FileID
}

// HasCaption reports whether this payload's type carries a caption.
func (p Payload) HasCaption() bool {
	switch p.Type {
	case TypePhoto, TypeVideo, TypeVoice, TypeAudio, TypeDocument, TypeAnimation:
		return true
	default:
		return false
	}
}

// sender is the part of the Bot API needed to emit a payload.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Send emits the payload into a chat, optionally as a reply (replyTo > 0).
// The switch is exhaustive over every Type; TypeUnknown (or any future tag
// read back from storage) renders the refusal notice.
func Send(api sender, chatID int64, p Payload, replyTo int) error {
	var cfg tgbotapi.Chattable

	switch p.Type {
	case TypeText:
		msg := tgbotapi.NewMessage(chatID, p.Text)
		msg.ReplyToMessageID = replyTo
		cfg = msg

	case TypePhoto:
		c := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(p.FileID))
		c.Caption = p.Caption
		c.ReplyToMessageID = replyTo
		cfg = c

	case TypeVideo:
		c := tgbotapi.NewVideo(chatID, tgbotapi.FileID(p.FileID))
		c.Caption = p.Caption
		c.ReplyToMessageID = replyTo
		cfg = c

	case TypeVoice:
		c := tgbotapi.NewVoice(chatID, tgbotapi.FileID(p.FileID))
		c.Caption = p.Caption
		c.ReplyToMessageID = replyTo
		cfg = c

	case TypeAudio:
		c := tgbotapi.NewAudio(chatID, tgbotapi.FileID(p.FileID))
		c.Caption = p.Caption
		c.ReplyToMessageID = replyTo
		cfg = c

	case TypeDocument:
		c := tgbotapi.NewDocument(chatID, tgbotapi.FileID(p.FileID))
		c.Caption = p.Caption
		c.ReplyToMessageID = replyTo
		cfg = c

	case TypeAnimation:
		c := tgbotapi.NewAnimation(chatID, tgbotapi.FileID(p.FileID))
		c.Caption = p.Caption
		c.ReplyToMessageID = replyTo
		cfg = c

	case TypeSticker:
		c := tgbotapi.NewSticker(chatID, tgbotapi.FileID(p.FileID))
		c.ReplyToMessageID = replyTo
		cfg = c

	case TypeVideoNote:
		c := tgbotapi.NewVideoNote(chatID, 0, tgbotapi.FileID(p.FileID))
		c.ReplyToMessageID = replyTo
		cfg = c

	default:
		msg := tgbotapi.NewMessage(chatID, msgUnsendable)
		msg.ReplyToMessageID = replyTo
		cfg = msg
	}

	_, err := api.Send(cfg)
	return err
}

// labels maps each type to its Persian human label for listings.
var labels = map[Type]string{
	TypeText:      "پیام متنی",
	TypePhoto:     "عکس",
	TypeVideo:     "ویدیو",
	TypeVoice:     "پیام صوتی",
	TypeAudio:     "صوت",
	TypeDocument:  "فایل",
	TypeAnimation: "گیف",
	TypeSticker:   "استیکر",
	TypeVideoNote: "ویدیو مسیج",
	TypeUnknown:   "نامشخص",
}

// Label returns the Persian label for a content type. Unlisted types (bad
// data read back from storage) fall back to the unknown label.
func Label(t Type) string {
	if l, ok := labels[t]; ok {
		return l
	}
	return labels[TypeUnknown]
}
