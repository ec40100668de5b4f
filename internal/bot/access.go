package bot

import (
	"context"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// AllowChats drops every update that does not come from one of ids. An empty
// list lets nothing through.
func AllowChats(ids []int64) bot.Middleware {
	allowed := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}

	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update == nil || update.Message == nil {
				return
			}
			if _, ok := allowed[update.Message.Chat.ID]; !ok {
				log.Printf("[bot.AllowChats] dropped update from chatID=%d", update.Message.Chat.ID)
				return
			}
			next(ctx, b, update)
		}
	}
}
