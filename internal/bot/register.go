package bot

import "github.com/go-telegram/bot"

// Register wires the chat commands into b. Handlers match in registration
// order, so the catch-all text handler goes last.
func Register(b *bot.Bot, chat Chat) {
	var (
		cmd  Handler = NewCommandHandler(chat)
		hist Handler = NewHistoryHandler(chat)
		txt  Handler = NewTextHandler(chat)
	)

	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, cmd.Handle)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/history", bot.MatchTypeExact, hist.Handle)
	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, txt.Handle)
}
