package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the dashboard service.
type Config struct {
	Port        string
	DatabaseURL string
	CORSOrigins []string

	// CurrentWeek is the week number the dashboard overview reports as
	// "current". The seed schedule and the UI are built around a fixed
	// value rather than a calendar-derived one.
	CurrentWeek int

	AIAPIKey  string
	AIBaseURL string
	AIModel   string

	TelegramToken  string
	TelegramChatID int64
	ReportTime     string // HH:MM, daily push; empty means use the interval
	ReportInterval time.Duration
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		CurrentWeek:    1,
		AIAPIKey:       strings.TrimSpace(os.Getenv("AI_API_KEY")),
		AIBaseURL:      strings.TrimSpace(os.Getenv("AI_BASE_URL")),
		AIModel:        getEnv("AI_MODEL", "gpt-4o-mini"),
		TelegramToken:  strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		ReportTime:     strings.TrimSpace(os.Getenv("REPORT_TIME")),
		ReportInterval: parseInterval(strings.TrimSpace(os.Getenv("REPORT_INTERVAL_HOURS"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "prep_dashboard.db"
	}

	cfg.CORSOrigins = splitOrigins(getEnv("CORS_ORIGINS", "*"))

	if raw := strings.TrimSpace(os.Getenv("CURRENT_WEEK")); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil || week < 1 {
			return cfg, fmt.Errorf("invalid CURRENT_WEEK %q", raw)
		}
		cfg.CurrentWeek = week
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q", raw)
		}
		cfg.TelegramChatID = chatID
	}

	if cfg.ReportInterval == 0 {
		cfg.ReportInterval = 5 * time.Hour
	}

	return cfg, nil
}

// ReportsEnabled reports whether the Telegram daily push is configured.
func (c Config) ReportsEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
