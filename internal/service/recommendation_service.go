package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"prep-dashboard/internal/ai"
	"prep-dashboard/internal/model"
	"prep-dashboard/internal/repository"
)

// Chat session settings for the coaching model. The session id is fixed
// so the provider may keep conversation history across calls.
const (
	ChatSessionID    = "internship-prep-dashboard"
	ChatSystemPrompt = "You are an AI assistant helping with internship preparation. " +
		"You analyze daily tasks, progress, and provide focused recommendations for " +
		"software engineering roles (frontend/backend/fullstack). Be concise and actionable."
	DefaultChatModel = "gpt-4o-mini"
)

const defaultHistoryLimit = 10

// RecommendationResult is returned to the API caller after one
// coaching request.
type RecommendationResult struct {
	Date            string `json:"date"`
	Recommendations string `json:"recommendations"`
	ContextUsed     string `json:"context_used"`
}

// RecommendationService obtains coaching advice for the current day and
// keeps an append-only history of replies.
type RecommendationService struct {
	tasks *repository.TaskRepository
	recs  *repository.RecommendationRepository
	chat  ai.Client
}

func NewRecommendationService(tasks *repository.TaskRepository, recs *repository.RecommendationRepository, chat ai.Client) *RecommendationService {
	return &RecommendationService{tasks: tasks, recs: recs, chat: chat}
}

// Get builds a context block from today's tasks, sends it with the
// user's request to the chat model, logs the reply and returns it. Any
// upstream failure surfaces to the caller; nothing is retried.
func (s *RecommendationService) Get(ctx context.Context, userPrompt string) (*RecommendationResult, error) {
	today := time.Now().Format(dateLayout)
	tasks, err := s.tasks.List(ctx, repository.TaskFilter{Date: &today})
	if err != nil {
		return nil, err
	}

	taskContext := buildTaskContext(today, tasks)
	prompt := buildPrompt(taskContext, userPrompt)

	reply, err := s.chat.Send(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("ai completion: %w", err)
	}
	reply = strings.TrimSpace(reply)

	rec := &model.AIRecommendation{
		ID:              uuid.NewString(),
		Date:            today,
		Recommendations: []string{reply},
		// Placeholder labels; the reply is stored whole and never parsed.
		FocusAreas:    []string{"DSA", "Projects", "Applications"},
		PriorityTasks: []string{"Complete daily DSA", "Work on portfolio", "Send applications"},
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.recs.Create(ctx, rec); err != nil {
		return nil, err
	}

	return &RecommendationResult{
		Date:            today,
		Recommendations: reply,
		ContextUsed:     taskContext,
	}, nil
}

// History returns the most recent replies, newest first. limit <= 0
// falls back to the default of 10.
func (s *RecommendationService) History(ctx context.Context, limit int) ([]model.AIRecommendation, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	recs, err := s.recs.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []model.AIRecommendation{}
	}
	return recs, nil
}

// buildTaskContext renders the day's tasks as one line each, with a
// three-way status marker.
func buildTaskContext(date string, tasks []model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today's tasks (%s):\n", date)
	for _, t := range tasks {
		marker := "❌"
		switch t.Status {
		case model.StatusCompleted:
			marker = "✅"
		case model.StatusInProgress:
			marker = "⏳"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", marker, t.Category, t.Description)
	}
	return b.String()
}

func buildPrompt(taskContext, userPrompt string) string {
	return fmt.Sprintf(`Based on my internship preparation progress, provide focused recommendations for today.

Context: %s

User question/request: %s

Please provide:
1. Top 3 priority tasks for today
2. Focus areas that need attention
3. Specific actionable recommendations
4. Time management tips

Keep it concise and actionable.`, taskContext, userPrompt)
}
