package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"llmChat/internal/ai_model"
	"llmChat/internal/ai_model/claude"
	"llmChat/internal/ai_model/gemini"
	"llmChat/internal/ai_model/hugging_face"
	"llmChat/internal/ai_model/yandex"
	internalbot "llmChat/internal/bot"
	"llmChat/internal/config"
	"llmChat/internal/db/conversation/sqlite"
	"llmChat/internal/service"
	"llmChat/internal/ui"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var yamlPath string
	if len(os.Args) > 1 {
		yamlPath = os.Args[1]
	}
	cfg, err := config.Load(yamlPath)
	if err != nil {
		log.Fatal(err)
	}

	apiKey, err := ai_model.ReadApiKey(cfg.ApiKeyPath)
	if err != nil {
		log.Fatal("Cannot read API key: ", err)
	}

	model, err := newAiModel(ctx, cfg, apiKey)
	if err != nil {
		log.Fatal(err)
	}
	model = ai_model.WithTimeout(model, cfg.RequestTimeout)

	repository, err := sqlite.Open(cfg.DbPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Init(); err != nil {
		log.Fatal("Cannot initialize repository: ", err, cfg.DbPath)
	}
	defer func(repository *sqlite.RepositorySQlite) {
		err := repository.Close()
		if err != nil {
			log.Println(err)
		}
	}(repository)

	controller := service.NewController(model, repository)
	if _, err := controller.Refresh(ctx); err != nil {
		log.Fatal("Cannot load conversation history: ", err)
	}
	log.Printf("model=%s db=%s history=%d", model.Name(), cfg.DbPath, len(controller.Snapshot().History))

	if cfg.BotToken != "" {
		b, err := bot.New(cfg.BotToken,
			bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, u *models.Update) {}),
			bot.WithMiddlewares(internalbot.AllowChats(cfg.AllowedChats)),
		)
		if err != nil {
			log.Fatal(err)
		}
		internalbot.Register(b, controller)
		log.Printf("telegram bot enabled for %d chat(s)", len(cfg.AllowedChats))

		go b.Start(ctx)
	}

	if err := ui.NewServer(controller).Run(ctx, cfg.UIAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func newAiModel(ctx context.Context, cfg config.Config, apiKey string) (ai_model.AiModel, error) {
	switch cfg.Provider {
	case ai_model.ProviderGemini:
		m, err := gemini.NewAiModelGemini(ctx, apiKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return m, nil
	case ai_model.ProviderAnthropic:
		return claude.NewAiModelAnthropic(apiKey, cfg.Model), nil
	case ai_model.ProviderHuggingFace:
		return hugging_face.NewHuggingFaceModel(apiKey, hugging_face.Model(cfg.Model)), nil
	case ai_model.ProviderYandex:
		m, err := yandex.NewAiModelYandex(apiKey, cfg.FolderId, cfg.Model)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %q", ai_model.ErrUnknownProvider, cfg.Provider)
	}
}
