package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"llmChat/internal/db/conversation"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	historyLimit = 20
	emptyHistory = "The conversation log is empty."
)

type HistoryHandler struct {
	Chat Chat
}

func NewHistoryHandler(chat Chat) *HistoryHandler {
	return &HistoryHandler{Chat: chat}
}

func (h *HistoryHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handle(ctx, b, update)
}

func (h *HistoryHandler) handle(ctx context.Context, b sender, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	snap, err := h.Chat.Refresh(ctx)
	if err != nil {
		log.Printf("[HistoryHandler.Handle] chatID=%d err=%v", chatID, err)
		if err := sendWithMenu(ctx, b, chatID, truncate("An error occurred: "+err.Error(), maxMessageLen)); err != nil {
			log.Printf("[HistoryHandler.Handle] SendMessage chatID=%d err=%v", chatID, err)
		}
		return
	}

	for _, text := range formatHistory(snap.History, historyLimit) {
		if err := sendWithMenu(ctx, b, chatID, text); err != nil {
			log.Printf("[HistoryHandler.Handle] SendMessage chatID=%d err=%v", chatID, err)
			return
		}
	}
}

// formatHistory renders the last limit entries as messages no longer than
// maxMessageLen runes each.
func formatHistory(entries []conversation.Entry, limit int) []string {
	if len(entries) == 0 {
		return []string{emptyHistory}
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	const sep = "\n\n"
	var chunks []string
	var b strings.Builder
	for _, e := range entries {
		block := truncate(fmt.Sprintf("#%d  %s\nYou: %s\nBot: %s", e.ID, e.Timestamp, e.UserMessage, e.BotResponse), maxMessageLen)
		if b.Len() > 0 && utf8.RuneCountInString(b.String())+len(sep)+utf8.RuneCountInString(block) > maxMessageLen {
			chunks = append(chunks, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(block)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}
