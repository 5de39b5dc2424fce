package moderation

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhosseinweb/tellbitj/internal/auth"
	"github.com/amirhosseinweb/tellbitj/internal/common"
)

const (
	superAdminID = int64(1000)
	managerID    = int64(2000)
	memberID     = int64(3000)
	targetID     = int64(4000)
	chatID       = int64(-100500)
)

type fakeAPI struct {
	sent     []tgbotapi.Chattable
	bans     []tgbotapi.BanChatMemberConfig
	banErr   error
	statuses map[int64]string
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if ban, ok := c.(tgbotapi.BanChatMemberConfig); ok {
		f.bans = append(f.bans, ban)
		if f.banErr != nil {
			return nil, f.banErr
		}
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetChatMember(cfg tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	status := f.statuses[cfg.UserID]
	if status == "" {
		status = "member"
	}
	return tgbotapi.ChatMember{Status: status, User: &tgbotapi.User{ID: cfg.UserID}}, nil
}

func (f *fakeAPI) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.sent, "expected a reply to be sent")
	msg, ok := f.sent[len(f.sent)-1].(tgbotapi.MessageConfig)
	require.True(t, ok)
	return msg.Text
}

type fakeDirectory struct{ managers map[int64]bool }

func (f *fakeDirectory) IsManager(_ context.Context, userID int64) (bool, error) {
	return f.managers[userID], nil
}

func newHandler(api *fakeAPI) *Handler {
	authorizer := auth.New(superAdminID, &fakeDirectory{managers: map[int64]bool{managerID: true}}, api)
	return NewHandler(authorizer, api)
}

func banCommand(fromID, onUserID int64) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 11,
		From:      &tgbotapi.User{ID: fromID, FirstName: "Sender"},
		Chat:      &tgbotapi.Chat{ID: chatID, Type: "supergroup"},
		ReplyToMessage: &tgbotapi.Message{
			MessageID: 5,
			From:      &tgbotapi.User{ID: onUserID, FirstName: "Target"},
			Chat:      &tgbotapi.Chat{ID: chatID, Type: "supergroup"},
		},
	}
}

func TestHandleBan(t *testing.T) {
	ctx := context.Background()

	t.Run("manager bans a plain member", func(t *testing.T) {
		api := &fakeAPI{}
		h := newHandler(api)

		h.HandleBan(ctx, banCommand(managerID, targetID))

		require.Len(t, api.bans, 1)
		assert.Equal(t, chatID, api.bans[0].ChatID)
		assert.Equal(t, targetID, api.bans[0].UserID)
		assert.Equal(t, msgBanned, api.lastText(t))
	})

	t.Run("plain member is ignored silently", func(t *testing.T) {
		api := &fakeAPI{}
		h := newHandler(api)

		h.HandleBan(ctx, banCommand(memberID, targetID))

		assert.Empty(t, api.bans)
		assert.Empty(t, api.sent)
	})

	t.Run("super-admin target is refused before any ban call", func(t *testing.T) {
		api := &fakeAPI{}
		h := newHandler(api)

		h.HandleBan(ctx, banCommand(managerID, superAdminID))

		assert.Empty(t, api.bans)
		assert.Contains(t, api.lastText(t), "مدیر ربات")
	})

	t.Run("roster manager target is refused", func(t *testing.T) {
		api := &fakeAPI{}
		h := newHandler(api)

		h.HandleBan(ctx, banCommand(superAdminID, managerID))

		assert.Empty(t, api.bans)
		assert.Contains(t, api.lastText(t), "مدیر ربات")
	})

	t.Run("chat admin target is refused", func(t *testing.T) {
		api := &fakeAPI{statuses: map[int64]string{targetID: "administrator"}}
		h := newHandler(api)

		h.HandleBan(ctx, banCommand(managerID, targetID))

		assert.Empty(t, api.bans)
		assert.Contains(t, api.lastText(t), "ادمین گروه")
	})

	t.Run("not a reply", func(t *testing.T) {
		api := &fakeAPI{}
		h := newHandler(api)

		msg := banCommand(managerID, targetID)
		msg.ReplyToMessage = nil
		h.HandleBan(ctx, msg)

		assert.Empty(t, api.bans)
		assert.Equal(t, common.MsgMustReply, api.lastText(t))
	})

	t.Run("transport failure becomes a generic reply", func(t *testing.T) {
		api := &fakeAPI{banErr: errors.New("not enough rights")}
		h := newHandler(api)

		h.HandleBan(ctx, banCommand(managerID, targetID))

		assert.Equal(t, msgBanFailed, api.lastText(t))
	})
}
