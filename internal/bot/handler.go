package bot

import (
	"context"

	"llmChat/internal/service"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type Handler interface {
	Handle(ctx context.Context, b *bot.Bot, update *models.Update)
}

// Chat is the part of service.Controller the bot drives.
type Chat interface {
	Submit(ctx context.Context, text string) (service.Snapshot, error)
	Refresh(ctx context.Context) (service.Snapshot, error)
	Snapshot() service.Snapshot
}

// sender is satisfied by *bot.Bot.
type sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}
