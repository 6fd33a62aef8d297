package service

import (
	"context"
	"testing"

	"prep-dashboard/internal/model"
	"prep-dashboard/internal/repository"
)

func newProgressEnv(t *testing.T) (*ProgressService, *TaskService) {
	t.Helper()
	repo := repository.NewTaskRepository(newTestDB(t))
	taskSvc := NewTaskService(repo)
	if _, err := taskSvc.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return NewProgressService(repo, 1), taskSvc
}

func completeFirst(t *testing.T, taskSvc *TaskService, filter repository.TaskFilter) model.Task {
	t.Helper()
	task := firstTask(t, taskSvc, filter)
	updated, err := taskSvc.Update(context.Background(), task.ID, TaskPatch{Status: statusPtr(model.StatusCompleted)})
	if err != nil {
		t.Fatal(err)
	}
	return *updated
}

func TestDailyProgressAfterInitialization(t *testing.T) {
	progress, _ := newProgressEnv(t)

	daily, err := progress.Daily(context.Background(), "2025-09-22")
	if err != nil {
		t.Fatal(err)
	}

	if daily.TotalTasks != 5 || daily.CompletedTasks != 0 {
		t.Fatalf("counts = %d/%d, want 0/5", daily.CompletedTasks, daily.TotalTasks)
	}
	if daily.CompletionPercentage != 0 {
		t.Fatalf("percentage = %f, want 0", daily.CompletionPercentage)
	}
	if len(daily.CategoryStats) != 5 {
		t.Fatalf("got %d categories in breakdown, want 5", len(daily.CategoryStats))
	}
	for category, stat := range daily.CategoryStats {
		if stat.Total != 1 || stat.Completed != 0 {
			t.Errorf("category %s stats = %+v, want {1 0}", category, stat)
		}
	}
	if len(daily.Tasks) != 5 {
		t.Fatalf("payload contains %d tasks, want 5", len(daily.Tasks))
	}
}

func TestDailyProgressCountsCompletions(t *testing.T) {
	progress, taskSvc := newProgressEnv(t)
	ctx := context.Background()

	date := "2025-09-22"
	dsa := model.CategoryDSA
	completeFirst(t, taskSvc, repository.TaskFilter{Date: &date, Category: &dsa})

	daily, err := progress.Daily(ctx, date)
	if err != nil {
		t.Fatal(err)
	}
	if daily.CompletedTasks != 1 {
		t.Fatalf("completed = %d, want 1", daily.CompletedTasks)
	}
	if daily.CompletionPercentage != 20 {
		t.Fatalf("percentage = %f, want 20", daily.CompletionPercentage)
	}
	if stat := daily.CategoryStats[model.CategoryDSA]; stat.Completed != 1 {
		t.Fatalf("DSA stat = %+v, want completed 1", stat)
	}
}

func TestDailyProgressUnknownDateIsEmpty(t *testing.T) {
	progress, _ := newProgressEnv(t)

	daily, err := progress.Daily(context.Background(), "1999-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if daily.TotalTasks != 0 || daily.CompletionPercentage != 0 {
		t.Fatalf("expected empty day, got %+v", daily)
	}
	if len(daily.Tasks) != 0 || len(daily.CategoryStats) != 0 {
		t.Fatalf("expected empty collections, got %+v", daily)
	}
}

func TestWeeklyProgressInvariants(t *testing.T) {
	progress, taskSvc := newProgressEnv(t)
	ctx := context.Background()

	date := "2025-09-29"
	apply := model.CategoryApply
	completeFirst(t, taskSvc, repository.TaskFilter{Date: &date, Category: &apply})

	weekly, err := progress.Weekly(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(weekly) != 2 {
		t.Fatalf("got %d weeks, want 2", len(weekly))
	}

	for i, week := range weekly {
		if week.CompletedTasks > week.TotalTasks {
			t.Errorf("week %d: completed %d > total %d", week.WeekNumber, week.CompletedTasks, week.TotalTasks)
		}
		if week.CompletionPercentage < 0 || week.CompletionPercentage > 100 {
			t.Errorf("week %d: percentage %f out of range", week.WeekNumber, week.CompletionPercentage)
		}
		if i > 0 && weekly[i-1].WeekNumber > week.WeekNumber {
			t.Error("weeks not sorted ascending")
		}
	}

	if weekly[1].ApplicationsSent != 1 {
		t.Errorf("week 2 applications_sent = %d, want 1", weekly[1].ApplicationsSent)
	}
	if weekly[1].CompletionPercentage != 10 {
		t.Errorf("week 2 percentage = %f, want 10", weekly[1].CompletionPercentage)
	}
}

func TestOverviewTotalsMatchWeekly(t *testing.T) {
	progress, taskSvc := newProgressEnv(t)
	ctx := context.Background()

	date := "2025-09-22"
	completeFirst(t, taskSvc, repository.TaskFilter{Date: &date})

	overview, err := progress.Overview(ctx)
	if err != nil {
		t.Fatal(err)
	}
	weekly, err := progress.Weekly(ctx)
	if err != nil {
		t.Fatal(err)
	}

	weeklyTotal := 0
	weeklyCompleted := 0
	for _, week := range weekly {
		weeklyTotal += week.TotalTasks
		weeklyCompleted += week.CompletedTasks
	}
	if overview.Overview.TotalTasks != weeklyTotal {
		t.Errorf("overview total %d != weekly sum %d", overview.Overview.TotalTasks, weeklyTotal)
	}
	if overview.Overview.CompletedTasks != weeklyCompleted {
		t.Errorf("overview completed %d != weekly sum %d", overview.Overview.CompletedTasks, weeklyCompleted)
	}
}

func TestOverviewCurrentWeekBlock(t *testing.T) {
	progress, _ := newProgressEnv(t)

	overview, err := progress.Overview(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if overview.CurrentWeek.WeekNumber != 1 {
		t.Fatalf("current week = %d, want configured 1", overview.CurrentWeek.WeekNumber)
	}
	// Week 1 seeds three days of five tasks each.
	if overview.CurrentWeek.TotalTasks != 15 {
		t.Fatalf("current week total = %d, want 15", overview.CurrentWeek.TotalTasks)
	}

	if len(overview.CategoryDistribution) != 5 {
		t.Fatalf("distribution has %d categories, want 5", len(overview.CategoryDistribution))
	}
	for _, dist := range overview.CategoryDistribution {
		if dist.Total != 5 {
			t.Errorf("category %s total = %d, want 5", dist.Category, dist.Total)
		}
	}
}

func TestOverviewConfigurableWeek(t *testing.T) {
	repo := repository.NewTaskRepository(newTestDB(t))
	taskSvc := NewTaskService(repo)
	if _, err := taskSvc.Initialize(context.Background()); err != nil {
		t.Fatal(err)
	}

	progress := NewProgressService(repo, 2)
	overview, err := progress.Overview(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if overview.CurrentWeek.WeekNumber != 2 {
		t.Fatalf("current week = %d, want 2", overview.CurrentWeek.WeekNumber)
	}
	// Week 2 seeds two days of five tasks each.
	if overview.CurrentWeek.TotalTasks != 10 {
		t.Fatalf("current week total = %d, want 10", overview.CurrentWeek.TotalTasks)
	}
}

func TestOverviewEmptyStoreIsZeroGuarded(t *testing.T) {
	repo := repository.NewTaskRepository(newTestDB(t))
	progress := NewProgressService(repo, 1)

	overview, err := progress.Overview(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if overview.Overview.OverallCompletion != 0 {
		t.Fatalf("overall completion = %f, want 0", overview.Overview.OverallCompletion)
	}
	if overview.Today.CompletionPercentage != 0 || overview.CurrentWeek.CompletionPercentage != 0 {
		t.Fatal("zero-task percentages not guarded")
	}
}
