package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"prep-dashboard/internal/service"
)

// Notifier pushes dashboard progress summaries to a fixed Telegram chat.
// It is outbound-only; the HTTP API is the sole write path for tasks.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	report *service.ReportService
}

func New(token string, chatID int64, report *service.ReportService) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] telegram notifier authorized on account %s", api.Self.UserName)

	return &Notifier{api: api, chatID: chatID, report: report}, nil
}

// SendDailyReport renders and pushes today's progress summary.
func (n *Notifier) SendDailyReport(ctx context.Context) error {
	text, err := n.report.DailySummary(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("build daily report: %w", err)
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send daily report: %w", err)
	}
	return nil
}
