package service

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"prep-dashboard/internal/model"
)

// ReportService builds human-readable progress summaries for outbound
// notifications.
type ReportService struct {
	progress *ProgressService
}

func NewReportService(progress *ProgressService) *ReportService {
	return &ReportService{progress: progress}
}

// DailySummary renders the given day's progress as Telegram-ready HTML.
func (s *ReportService) DailySummary(ctx context.Context, now time.Time) (string, error) {
	daily, err := s.progress.Daily(ctx, now.Format(dateLayout))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("📋 <b>Prep progress</b>\n")
	fmt.Fprintf(&b, "🗓 %s\n\n", daily.Date)

	if daily.TotalTasks == 0 {
		b.WriteString("No tasks scheduled for today.")
		return b.String(), nil
	}

	fmt.Fprintf(&b, "Done: <b>%d/%d</b> (%.0f%%)\n\n", daily.CompletedTasks, daily.TotalTasks, daily.CompletionPercentage)

	categories := make([]model.Category, 0, len(daily.CategoryStats))
	for c := range daily.CategoryStats {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	for _, c := range categories {
		st := daily.CategoryStats[c]
		fmt.Fprintf(&b, "%s: %d/%d\n", c, st.Completed, st.Total)
	}

	var open []model.Task
	for _, t := range daily.Tasks {
		if t.Status != model.StatusCompleted {
			open = append(open, t)
		}
	}
	if len(open) > 0 {
		b.WriteString("\n🔥 <b>Still open</b>\n")
		for _, t := range open {
			marker := "⏳"
			if t.Status == model.StatusPending {
				marker = "❌"
			}
			fmt.Fprintf(&b, "%s %s: %s\n", marker, t.Category, html.EscapeString(t.Description))
		}
	}

	return strings.TrimSpace(b.String()), nil
}
