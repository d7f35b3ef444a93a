package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "BASE_URL", "SERVER_HOST", "PORT",
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"API_SECRET", "OWNER_ID", "BOT_TOKEN", "YTDLP_PATH",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "tunelink" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "tunelink")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Resolver.BinPath != "yt-dlp" {
		t.Errorf("Resolver.BinPath = %q, want %q", cfg.Resolver.BinPath, "yt-dlp")
	}
	if cfg.Telegram.Enabled() {
		t.Error("bot surface should be disabled without BOT_TOKEN")
	}
}

func TestLoad_GeneratesSecretWhenUnset(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.Secret == "" {
		t.Fatal("expected generated secret")
	}

	cfg2, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.Secret == cfg2.Auth.Secret {
		t.Error("generated secrets should differ per load")
	}
}

func TestLoad_ExplicitSecretKept(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_SECRET", "super-secret-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.Secret != "super-secret-key" {
		t.Errorf("Auth.Secret = %q, want %q", cfg.Auth.Secret, "super-secret-key")
	}
}

func TestLoad_BotRequiresOwner(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")

	if _, err := Load(""); err == nil {
		t.Error("expected error when BOT_TOKEN set without OWNER_ID")
	}

	t.Setenv("OWNER_ID", "123456789")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Telegram.Enabled() {
		t.Error("bot surface should be enabled")
	}
	if cfg.Auth.OwnerID != 123456789 {
		t.Errorf("OwnerID = %d, want 123456789", cfg.Auth.OwnerID)
	}
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("app:\n  base_url: https://file.example\nauth:\n  secret: file-secret\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("API_SECRET", "env-secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.Secret != "env-secret" {
		t.Errorf("Auth.Secret = %q, want env override %q", cfg.Auth.Secret, "env-secret")
	}
	if cfg.App.BaseURL != "https://file.example" {
		t.Errorf("App.BaseURL = %q, want file value", cfg.App.BaseURL)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "70000")

	if _, err := Load(""); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestServerConfig_Address(t *testing.T) {
	c := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := c.Address(); got != "127.0.0.1:8080" {
		t.Errorf("Address() = %q", got)
	}
}
