package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
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
	chatID       = int64(-100500)
)

func TestDetectSource(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"hello world", LangEnglish},
		{"سلام دنیا", LangPersian},
		{"hello سلام", LangPersian},
		{"", LangEnglish},
		{"12345 !?", LangEnglish},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectSource(tt.text), tt.text)
	}
}

func TestClientTranslate(t *testing.T) {
	ctx := context.Background()

	t.Run("same language passes through without a request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("no request expected")
		}))
		defer srv.Close()

		got, err := NewClient(srv.URL, srv.Client()).Translate(ctx, "سلام", LangPersian)
		require.NoError(t, err)
		assert.Equal(t, "سلام", got)
	})

	t.Run("translates via the API", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "hello", r.URL.Query().Get("q"))
			assert.Equal(t, "en|fa", r.URL.Query().Get("langpair"))
			w.Write([]byte(`{"responseData":{"translatedText":"سلام"}}`))
		}))
		defer srv.Close()

		got, err := NewClient(srv.URL, srv.Client()).Translate(ctx, "hello", LangPersian)
		require.NoError(t, err)
		assert.Equal(t, "سلام", got)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, srv.Client()).Translate(ctx, "hello", LangPersian)
		assert.Error(t, err)
	})

	t.Run("empty translation is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"responseData":{"translatedText":""}}`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, srv.Client()).Translate(ctx, "hello", LangPersian)
		assert.Error(t, err)
	})
}

type fakeAPI struct {
	sent []tgbotapi.Chattable
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetChatMember(tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	return tgbotapi.ChatMember{Status: "member"}, nil
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

func newHandler(client *Client) (*Handler, *fakeAPI) {
	api := &fakeAPI{}
	authorizer := auth.New(superAdminID, &fakeDirectory{managers: map[int64]bool{managerID: true}}, api)
	return NewHandler(client, authorizer, api), api
}

func command(fromID int64, reply *tgbotapi.Message) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID:      11,
		From:           &tgbotapi.User{ID: fromID},
		Chat:           &tgbotapi.Chat{ID: chatID, Type: "supergroup"},
		ReplyToMessage: reply,
	}
}

func repliedText(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 5,
		From:      &tgbotapi.User{ID: 4000},
		Chat:      &tgbotapi.Chat{ID: chatID, Type: "supergroup"},
		Text:      text,
	}
}

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("replies with the translation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"responseData":{"translatedText":"سلام"}}`))
		}))
		defer srv.Close()
		h, api := newHandler(NewClient(srv.URL, srv.Client()))

		h.Handle(ctx, command(managerID, repliedText("hello")), LangPersian)

		assert.Equal(t, "سلام", api.lastText(t))
	})

	t.Run("caption is used when there is no text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "nice photo", r.URL.Query().Get("q"))
			w.Write([]byte(`{"responseData":{"translatedText":"عکس خوب"}}`))
		}))
		defer srv.Close()
		h, api := newHandler(NewClient(srv.URL, srv.Client()))

		reply := repliedText("")
		reply.Caption = "nice photo"
		reply.Photo = []tgbotapi.PhotoSize{{FileID: "p1"}}
		h.Handle(ctx, command(managerID, reply), LangPersian)

		assert.Equal(t, "عکس خوب", api.lastText(t))
	})

	t.Run("no text or caption", func(t *testing.T) {
		h, api := newHandler(NewClient("http://unused", nil))
		h.Handle(ctx, command(managerID, repliedText("")), LangPersian)
		assert.Equal(t, msgNoText, api.lastText(t))
	})

	t.Run("not a reply", func(t *testing.T) {
		h, api := newHandler(NewClient("http://unused", nil))
		h.Handle(ctx, command(managerID, nil), LangPersian)
		assert.Equal(t, common.MsgMustReplyMessage, api.lastText(t))
	})

	t.Run("API failure becomes the failure reply", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()
		h, api := newHandler(NewClient(srv.URL, srv.Client()))

		h.Handle(ctx, command(managerID, repliedText("hello")), LangPersian)

		assert.Equal(t, msgFailed, api.lastText(t))
	})

	t.Run("plain member is ignored", func(t *testing.T) {
		h, api := newHandler(NewClient("http://unused", nil))
		h.Handle(ctx, command(memberID, repliedText("hello")), LangPersian)
		assert.Empty(t, api.sent)
	})
}
