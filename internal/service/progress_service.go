package service

import (
	"context"
	"time"

	"prep-dashboard/internal/model"
	"prep-dashboard/internal/repository"
)

const dateLayout = "2006-01-02"

// ProgressService computes completion statistics over stored tasks.
type ProgressService struct {
	repo        *repository.TaskRepository
	currentWeek int
}

// NewProgressService builds the aggregator. currentWeek is the week
// number reported by the dashboard overview; the schedule and UI are
// built around it rather than deriving it from the calendar.
func NewProgressService(repo *repository.TaskRepository, currentWeek int) *ProgressService {
	return &ProgressService{repo: repo, currentWeek: currentWeek}
}

// Weekly returns per-(week, phase) aggregates sorted by week number.
func (s *ProgressService) Weekly(ctx context.Context) ([]model.WeeklyProgress, error) {
	rows, err := s.repo.WeeklyAggregate(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].CompletionPercentage = percentage(rows[i].CompletedTasks, rows[i].TotalTasks)
	}
	if rows == nil {
		rows = []model.WeeklyProgress{}
	}
	return rows, nil
}

// Daily summarizes one date; an empty date means today (server local).
func (s *ProgressService) Daily(ctx context.Context, date string) (*model.DailyProgress, error) {
	if date == "" {
		date = time.Now().Format(dateLayout)
	}

	tasks, err := s.repo.List(ctx, repository.TaskFilter{Date: &date})
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	completed := 0
	stats := make(map[model.Category]model.CategoryStat)
	for _, t := range tasks {
		st := stats[t.Category]
		st.Total++
		if t.Status == model.StatusCompleted {
			st.Completed++
			completed++
		}
		stats[t.Category] = st
	}

	return &model.DailyProgress{
		Date:                 date,
		TotalTasks:           len(tasks),
		CompletedTasks:       completed,
		CompletionPercentage: percentage(completed, len(tasks)),
		CategoryStats:        stats,
		Tasks:                tasks,
	}, nil
}

// Overview assembles the composite dashboard payload: global counters,
// today's block, the current week's block and the all-time category
// distribution.
func (s *ProgressService) Overview(ctx context.Context) (*model.DashboardOverview, error) {
	total, err := s.repo.Count(ctx, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}
	completedStatus := model.StatusCompleted
	completed, err := s.repo.Count(ctx, repository.TaskFilter{Status: &completedStatus})
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(dateLayout)
	todayTasks, err := s.repo.List(ctx, repository.TaskFilter{Date: &today})
	if err != nil {
		return nil, err
	}
	if todayTasks == nil {
		todayTasks = []model.Task{}
	}
	todayCompleted := countCompleted(todayTasks)

	week := s.currentWeek
	weekTasks, err := s.repo.List(ctx, repository.TaskFilter{WeekNumber: &week})
	if err != nil {
		return nil, err
	}
	weekCompleted := countCompleted(weekTasks)

	distribution, err := s.repo.CategoryAggregate(ctx)
	if err != nil {
		return nil, err
	}
	if distribution == nil {
		distribution = []model.CategoryDistribution{}
	}

	return &model.DashboardOverview{
		Overview: model.OverviewStats{
			TotalTasks:        int(total),
			CompletedTasks:    int(completed),
			OverallCompletion: percentage(int(completed), int(total)),
		},
		Today: model.TodaySummary{
			Date:                 today,
			TotalTasks:           len(todayTasks),
			CompletedTasks:       todayCompleted,
			CompletionPercentage: percentage(todayCompleted, len(todayTasks)),
			Tasks:                todayTasks,
		},
		CurrentWeek: model.WeekSummary{
			WeekNumber:           week,
			TotalTasks:           len(weekTasks),
			CompletedTasks:       weekCompleted,
			CompletionPercentage: percentage(weekCompleted, len(weekTasks)),
		},
		CategoryDistribution: distribution,
	}, nil
}

func countCompleted(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			n++
		}
	}
	return n
}

// percentage is completed/total*100, defined as 0 when total is 0.
func percentage(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
