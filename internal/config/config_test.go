package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "CORS_ORIGINS", "CURRENT_WEEK",
		"AI_API_KEY", "AI_BASE_URL", "AI_MODEL",
		"TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID", "REPORT_TIME", "REPORT_INTERVAL_HOURS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.DatabaseURL != "prep_dashboard.db" {
		t.Errorf("database url = %q", cfg.DatabaseURL)
	}
	if cfg.CurrentWeek != 1 {
		t.Errorf("current week = %d, want 1", cfg.CurrentWeek)
	}
	if cfg.AIModel != "gpt-4o-mini" {
		t.Errorf("ai model = %q", cfg.AIModel)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("cors origins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.ReportInterval != 5*time.Hour {
		t.Errorf("report interval = %v, want 5h", cfg.ReportInterval)
	}
	if cfg.ReportsEnabled() {
		t.Error("reports enabled without telegram settings")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://dash.example.com")
	t.Setenv("CURRENT_WEEK", "3")
	t.Setenv("TELEGRAM_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("REPORT_INTERVAL_HOURS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != "9000" {
		t.Errorf("port = %q", cfg.Port)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://dash.example.com" {
		t.Errorf("cors origins = %v", cfg.CORSOrigins)
	}
	if cfg.CurrentWeek != 3 {
		t.Errorf("current week = %d", cfg.CurrentWeek)
	}
	if cfg.TelegramChatID != 42 || !cfg.ReportsEnabled() {
		t.Errorf("telegram settings not applied: %+v", cfg)
	}
	if cfg.ReportInterval != 2*time.Hour {
		t.Errorf("report interval = %v", cfg.ReportInterval)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CURRENT_WEEK", "zero")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad CURRENT_WEEK")
	}
	t.Setenv("CURRENT_WEEK", "")

	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad TELEGRAM_CHAT_ID")
	}
}
