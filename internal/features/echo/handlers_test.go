package echo

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhosseinweb/tellbitj/internal/auth"
)

const (
	superAdminID = int64(1000)
	managerID    = int64(2000)
	memberID     = int64(3000)
	chatID       = int64(-100500)
)

type fakeAPI struct {
	sent    []tgbotapi.Chattable
	deletes []tgbotapi.DeleteMessageConfig
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if del, ok := c.(tgbotapi.DeleteMessageConfig); ok {
		f.deletes = append(f.deletes, del)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetChatMember(tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	return tgbotapi.ChatMember{Status: "member"}, nil
}

type fakeDirectory struct{ managers map[int64]bool }

func (f *fakeDirectory) IsManager(_ context.Context, userID int64) (bool, error) {
	return f.managers[userID], nil
}

func newHandler(api *fakeAPI) *Handler {
	authorizer := auth.New(superAdminID, &fakeDirectory{managers: map[int64]bool{managerID: true}}, api)
	return NewHandler(authorizer, api)
}

func textCommand(fromID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 11,
		From:      &tgbotapi.User{ID: fromID, FirstName: "Sender"},
		Chat:      &tgbotapi.Chat{ID: chatID, Type: "supergroup"},
		Text:      text,
	}
}

func TestHandleText(t *testing.T) {
	ctx := context.Background()

	t.Run("relays the argument and deletes the trigger", func(t *testing.T) {
		api := &fakeAPI{}
		h := newHandler(api)

		h.Handle(ctx, textCommand(managerID, "اکو test"), "test")

		require.Len(t, api.sent, 1)
		out, ok := api.sent[0].(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.Equal(t, "test", out.Text)
		assert.Zero(t, out.ReplyToMessageID)

		require.Len(t, api.deletes, 1)
		assert.Equal(t, 11, api.deletes[0].MessageID)
	})

	t.Run("echo on a reply addresses the replied-to message", func(t *testing.T) {
		api := &fakeAPI{}
		h := newHandler(api)

		msg := textCommand(managerID, "اکو سلام")
		msg.ReplyToMessage = &tgbotapi.Message{MessageID: 5, From: &tgbotapi.User{ID: 4000}}
		h.Handle(ctx, msg, "سلام")

		require.Len(t, api.sent, 1)
		out := api.sent[0].(tgbotapi.MessageConfig)
		assert.Equal(t, 5, out.ReplyToMessageID)
	})

	t.Run("plain member gets nothing: no relay, no delete", func(t *testing.T) {
		api := &fakeAPI{}
		h := newHandler(api)

		h.Handle(ctx, textCommand(memberID, "اکو test"), "test")

		assert.Empty(t, api.sent)
		assert.Empty(t, api.deletes)
	})
}

func TestHandleCaption(t *testing.T) {
	ctx := context.Background()

	t.Run("relays the media with a rewritten caption", func(t *testing.T) {
		api := &fakeAPI{}
		h := newHandler(api)

		msg := textCommand(managerID, "")
		msg.Caption = "اکو new caption"
		msg.Photo = []tgbotapi.PhotoSize{{FileID: "p1", Width: 800, Height: 600}}
		h.Handle(ctx, msg, "new caption")

		require.Len(t, api.sent, 1)
		photo, ok := api.sent[0].(tgbotapi.PhotoConfig)
		require.True(t, ok)
		assert.Equal(t, "new caption", photo.Caption)
		require.Len(t, api.deletes, 1)
	})

	t.Run("captionless media kinds are skipped", func(t *testing.T) {
		api := &fakeAPI{}
		h := newHandler(api)

		msg := textCommand(managerID, "")
		msg.Caption = "اکو x"
		msg.Sticker = &tgbotapi.Sticker{FileID: "s1"}
		h.Handle(ctx, msg, "x")

		assert.Empty(t, api.sent)
		assert.Empty(t, api.deletes)
	})

	t.Run("no text and no caption is a no-op", func(t *testing.T) {
		api := &fakeAPI{}
		h := newHandler(api)

		h.Handle(ctx, textCommand(managerID, ""), "")

		assert.Empty(t, api.sent)
		assert.Empty(t, api.deletes)
	})
}
