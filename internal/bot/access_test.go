package bot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"llmChat/internal/db/conversation"
	"llmChat/internal/service"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func TestAllowChats(t *testing.T) {
	var calls []int64
	next := func(_ context.Context, _ *bot.Bot, u *models.Update) {
		calls = append(calls, u.Message.Chat.ID)
	}
	h := AllowChats([]int64{42, 43})(next)

	h(context.Background(), nil, textUpdate(42, "Hello"))
	h(context.Background(), nil, textUpdate(7, "Hello"))
	h(context.Background(), nil, &models.Update{})
	h(context.Background(), nil, textUpdate(43, "/history"))

	if len(calls) != 2 || calls[0] != 42 || calls[1] != 43 {
		t.Fatalf("passed chats = %v, want [42 43]", calls)
	}
}

func TestAllowChats_EmptyListBlocksEveryone(t *testing.T) {
	called := false
	h := AllowChats(nil)(func(context.Context, *bot.Bot, *models.Update) { called = true })

	h(context.Background(), nil, textUpdate(42, "Hello"))

	if called {
		t.Fatal("update passed an empty allow list")
	}
}

type sentMessage struct {
	chatID string
	text   string
}

// newTelegramServer answers sendMessage like the Bot API and records what was sent.
func newTelegramServer(t *testing.T) (*httptest.Server, func() []sentMessage) {
	t.Helper()
	var mu sync.Mutex
	var sent []sentMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse form: %v", err)
		}
		mu.Lock()
		sent = append(sent, sentMessage{chatID: r.FormValue("chat_id"), text: r.FormValue("text")})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"},"text":"ok"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []sentMessage {
		mu.Lock()
		defer mu.Unlock()
		return append([]sentMessage(nil), sent...)
	}
}

func newTestBot(t *testing.T, serverURL string, chat Chat, allowed ...int64) *bot.Bot {
	t.Helper()
	b, err := bot.New("123:abc",
		bot.WithSkipGetMe(),
		bot.WithServerURL(serverURL),
		bot.WithNotAsyncHandlers(),
		bot.WithDefaultHandler(func(context.Context, *bot.Bot, *models.Update) {}),
		bot.WithMiddlewares(AllowChats(allowed)),
	)
	if err != nil {
		t.Fatalf("bot.New: %v", err)
	}
	Register(b, chat)
	return b
}

func TestRegister_CommandsWinOverText(t *testing.T) {
	srv, sent := newTelegramServer(t)
	chat := &fakeChat{snap: service.Snapshot{
		Model:   "gemini/gemini-2.5-flash",
		History: []conversation.Entry{{ID: 1, Timestamp: "2025-06-01 12:30:45", UserMessage: "Hello", BotResponse: "Hi there"}},
	}}
	b := newTestBot(t, srv.URL, chat, 42)

	b.ProcessUpdate(context.Background(), textUpdate(42, "/history"))
	b.ProcessUpdate(context.Background(), textUpdate(42, "/start"))

	if len(chat.submitted) != 0 {
		t.Fatalf("commands reached the model: %q", chat.submitted)
	}
	if chat.refreshes != 1 {
		t.Errorf("refreshes = %d, want 1", chat.refreshes)
	}
	got := sent()
	if len(got) != 2 {
		t.Fatalf("sent %d messages, want 2", len(got))
	}
	if got[0].chatID != "42" || !strings.Contains(got[0].text, "You: Hello") {
		t.Errorf("history reply = %+v", got[0])
	}
	if !strings.Contains(got[1].text, "gemini/gemini-2.5-flash") {
		t.Errorf("greeting = %+v", got[1])
	}
}

func TestRegister_TextGoesToChat(t *testing.T) {
	srv, sent := newTelegramServer(t)
	chat := &fakeChat{snap: service.Snapshot{Response: "Hi there"}}
	b := newTestBot(t, srv.URL, chat, 42)

	b.ProcessUpdate(context.Background(), textUpdate(42, "Hello"))

	if len(chat.submitted) != 1 || chat.submitted[0] != "Hello" {
		t.Fatalf("submitted = %q", chat.submitted)
	}
	if got := sent(); len(got) != 1 || got[0].text != "Hi there" {
		t.Fatalf("sent = %+v", got)
	}
}

func TestRegister_UnknownChatIsIgnored(t *testing.T) {
	srv, sent := newTelegramServer(t)
	chat := &fakeChat{snap: service.Snapshot{Response: "Hi there"}}
	b := newTestBot(t, srv.URL, chat, 42)

	b.ProcessUpdate(context.Background(), textUpdate(7, "Hello"))
	b.ProcessUpdate(context.Background(), textUpdate(7, "/history"))

	if len(chat.submitted) != 0 || chat.refreshes != 0 {
		t.Fatalf("unknown chat reached the controller: submitted=%q refreshes=%d", chat.submitted, chat.refreshes)
	}
	if got := sent(); len(got) != 0 {
		t.Fatalf("replied to unknown chat: %+v", got)
	}
}
