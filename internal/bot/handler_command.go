package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type CommandHandler struct {
	Chat Chat
}

func NewCommandHandler(chat Chat) *CommandHandler {
	return &CommandHandler{Chat: chat}
}

func (h *CommandHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handle(ctx, b, update)
}

func (h *CommandHandler) handle(ctx context.Context, b sender, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	intro := fmt.Sprintf(
		"Hi! Every message you send goes to %s and the exchange is saved to the conversation log.\n\n"+
			"Send /history to see what has been stored so far.",
		h.Chat.Snapshot().Model,
	)
	if err := sendWithMenu(ctx, b, chatID, intro); err != nil {
		log.Println("[CommandHandler.Handle] SendWithMenu:", err)
	}
}
