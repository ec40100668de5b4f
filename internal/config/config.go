package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"llmChat/internal/ai_model"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultProvider   = ai_model.ProviderGemini
	defaultApiKeyPath = "API.txt"
	defaultDbPath     = "chat.db"
	defaultUIAddr     = "127.0.0.1:8080"
)

type Config struct {
	Provider       string        `yaml:"provider"`
	Model          string        `yaml:"model"`
	ApiKeyPath     string        `yaml:"api_key_file"`
	DbPath         string        `yaml:"db_path"`
	UIAddr         string        `yaml:"ui_addr"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	BotToken       string        `yaml:"telegram_bot_token"`
	FolderId       string        `yaml:"yandex_folder_id"`
	AllowedChats   []int64       `yaml:"telegram_allowed_chat_ids"`
}

// Load builds the configuration from, in increasing precedence: defaults, the
// optional YAML file at yamlPath, and the environment (a .env file in the
// working directory is loaded first if present).
func Load(yamlPath string) (c Config, err error) {
	c = Config{
		Provider:   defaultProvider,
		ApiKeyPath: defaultApiKeyPath,
		DbPath:     defaultDbPath,
		UIAddr:     defaultUIAddr,
	}

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", yamlPath, err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", yamlPath, err)
		}
	}

	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
		log.Println("[config.Load] no .env file, using process environment")
	}

	overrideString(&c.Provider, "CHAT_PROVIDER")
	overrideString(&c.Model, "CHAT_MODEL")
	overrideString(&c.ApiKeyPath, "CHAT_API_KEY_FILE")
	overrideString(&c.DbPath, "CHAT_DB_PATH")
	overrideString(&c.UIAddr, "CHAT_UI_ADDR")
	overrideString(&c.BotToken, "TELEGRAM_BOT_TOKEN")
	overrideString(&c.FolderId, "YC_FOLDER_ID")
	if v := os.Getenv("TELEGRAM_ALLOWED_CHAT_IDS"); v != "" {
		ids, err := parseChatIDs(v)
		if err != nil {
			return c, fmt.Errorf("invalid TELEGRAM_ALLOWED_CHAT_IDS %q: %w", v, err)
		}
		c.AllowedChats = ids
	}
	if v := os.Getenv("CHAT_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("invalid CHAT_REQUEST_TIMEOUT %q: %w", v, err)
		}
		c.RequestTimeout = d
	}

	if !ai_model.KnownProvider(c.Provider) {
		return c, fmt.Errorf("%w: %q", ai_model.ErrUnknownProvider, c.Provider)
	}
	if c.Provider == ai_model.ProviderYandex && c.FolderId == "" {
		return c, fmt.Errorf("YC_FOLDER_ID is required for provider %s", c.Provider)
	}
	if c.BotToken != "" && len(c.AllowedChats) == 0 {
		return c, fmt.Errorf("TELEGRAM_ALLOWED_CHAT_IDS is required when the Telegram bot is enabled")
	}
	if c.ApiKeyPath == "" {
		return c, fmt.Errorf("api_key_file is required")
	}
	if c.DbPath == "" {
		return c, fmt.Errorf("db_path is required")
	}
	if c.UIAddr == "" {
		return c, fmt.Errorf("ui_addr is required")
	}
	if c.RequestTimeout < 0 {
		return c, fmt.Errorf("request_timeout must not be negative")
	}

	return c, nil
}

// parseChatIDs reads a comma-separated list of Telegram chat ids.
func parseChatIDs(v string) ([]int64, error) {
	var ids []int64
	for _, f := range strings.Split(v, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
