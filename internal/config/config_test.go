package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"llmChat/internal/ai_model"
	"llmChat/internal/config"
)

var envKeys = []string{
	"CHAT_PROVIDER", "CHAT_MODEL", "CHAT_API_KEY_FILE", "CHAT_DB_PATH",
	"CHAT_UI_ADDR", "CHAT_REQUEST_TIMEOUT", "TELEGRAM_BOT_TOKEN", "YC_FOLDER_ID", "TELEGRAM_ALLOWED_CHAT_IDS",
}

// isolate runs the test in an empty directory (no .env) with a clean environment.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Provider != ai_model.ProviderGemini || c.ApiKeyPath != "API.txt" || c.DbPath != "chat.db" || c.UIAddr != "127.0.0.1:8080" {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if c.Model != "" || c.BotToken != "" || c.RequestTimeout != 0 {
		t.Fatalf("unexpected optional values %+v", c)
	}
}

func TestLoad_YAMLThenEnvOverride(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "chat.yaml")
	yml := "provider: anthropic\nmodel: claude-3-5-haiku-latest\ndb_path: history.db\nrequest_timeout: 30s\n"
	if err := os.WriteFile(p, []byte(yml), 0o644); err != nil {
		t.Fatalf("prep: %v", err)
	}
	t.Setenv("CHAT_DB_PATH", "override.db")

	c, err := config.Load(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Provider != ai_model.ProviderAnthropic || c.Model != "claude-3-5-haiku-latest" {
		t.Fatalf("yaml values not applied: %+v", c)
	}
	if c.DbPath != "override.db" {
		t.Fatalf("DbPath = %q, env should win", c.DbPath)
	}
	if c.RequestTimeout != 30*time.Second {
		t.Fatalf("RequestTimeout = %v", c.RequestTimeout)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	env := "CHAT_PROVIDER=huggingface\nTELEGRAM_BOT_TOKEN=123:abc\nTELEGRAM_ALLOWED_CHAT_IDS=42, -1001234\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644); err != nil {
		t.Fatalf("prep: %v", err)
	}
	// godotenv does not overwrite variables that are already set, even to ""
	os.Unsetenv("CHAT_PROVIDER")
	os.Unsetenv("TELEGRAM_BOT_TOKEN")
	os.Unsetenv("TELEGRAM_ALLOWED_CHAT_IDS")
	t.Cleanup(func() {
		os.Unsetenv("CHAT_PROVIDER")
		os.Unsetenv("TELEGRAM_BOT_TOKEN")
		os.Unsetenv("TELEGRAM_ALLOWED_CHAT_IDS")
	})

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Provider != ai_model.ProviderHuggingFace || c.BotToken != "123:abc" {
		t.Fatalf(".env values not applied: %+v", c)
	}
	if len(c.AllowedChats) != 2 || c.AllowedChats[0] != 42 || c.AllowedChats[1] != -1001234 {
		t.Fatalf("AllowedChats = %v", c.AllowedChats)
	}
}

func TestLoad_BotTokenNeedsAllowedChats(t *testing.T) {
	isolate(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected error for a bot without allowed chats")
	}
}

func TestLoad_AllowedChatsFromYAML(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "chat.yaml")
	yml := "telegram_bot_token: \"123:abc\"\ntelegram_allowed_chat_ids: [42, 43]\n"
	if err := os.WriteFile(p, []byte(yml), 0o644); err != nil {
		t.Fatalf("prep: %v", err)
	}

	c, err := config.Load(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(c.AllowedChats) != 2 || c.AllowedChats[0] != 42 || c.AllowedChats[1] != 43 {
		t.Fatalf("AllowedChats = %v", c.AllowedChats)
	}
}

func TestLoad_InvalidAllowedChats(t *testing.T) {
	isolate(t)
	t.Setenv("TELEGRAM_ALLOWED_CHAT_IDS", "42,me")

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected error for a non-numeric chat id")
	}
}

func TestLoad_UnknownProvider(t *testing.T) {
	isolate(t)
	t.Setenv("CHAT_PROVIDER", "openai")

	_, err := config.Load("")
	if !errors.Is(err, ai_model.ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestLoad_YandexNeedsFolder(t *testing.T) {
	isolate(t)
	t.Setenv("CHAT_PROVIDER", ai_model.ProviderYandex)

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected error without YC_FOLDER_ID")
	}

	t.Setenv("YC_FOLDER_ID", "b1gfolder")
	c, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.FolderId != "b1gfolder" {
		t.Fatalf("FolderId = %q", c.FolderId)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	isolate(t)
	t.Setenv("CHAT_REQUEST_TIMEOUT", "soon")

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected error for invalid timeout")
	}
}

func TestLoad_NegativeTimeout(t *testing.T) {
	isolate(t)
	t.Setenv("CHAT_REQUEST_TIMEOUT", "-1s")

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestLoad_MissingYAML(t *testing.T) {
	dir := isolate(t)
	if _, err := config.Load(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(p, []byte("provider: [oops"), 0o644); err != nil {
		t.Fatalf("prep: %v", err)
	}
	if _, err := config.Load(p); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
