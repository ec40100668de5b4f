package bot

import (
	"context"
	"errors"
	"log"

	"llmChat/internal/service"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	busyReply          = "Still waiting for the previous reply, try again in a moment."
	emptyResponseReply = "(the model returned an empty response)"
)

type TextHandler struct {
	Chat Chat
}

func NewTextHandler(chat Chat) *TextHandler {
	return &TextHandler{Chat: chat}
}

func (h *TextHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handle(ctx, b, update)
}

func (h *TextHandler) handle(ctx context.Context, b sender, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	snap, err := h.Chat.Submit(ctx, update.Message.Text)
	reply := snap.Response
	switch {
	case errors.Is(err, service.ErrBusy):
		reply = busyReply
	case err != nil:
		log.Printf("[TextHandler.Handle] chatID=%d err=%v", chatID, err)
		reply = "An error occurred: " + err.Error()
	case reply == "":
		reply = emptyResponseReply
	}

	for _, text := range splitText(reply, maxMessageLen) {
		if err := sendWithMenu(ctx, b, chatID, text); err != nil {
			log.Printf("[TextHandler.Handle] SendMessage chatID=%d err=%v", chatID, err)
			return
		}
	}
}
