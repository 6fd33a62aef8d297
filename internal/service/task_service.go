package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"prep-dashboard/internal/model"
	"prep-dashboard/internal/repository"
	"prep-dashboard/internal/schedule"
)

// TaskPatch carries the updatable subset of task fields. Nil fields are
// left unchanged.
type TaskPatch struct {
	Status      *model.Status `json:"status"`
	Description *string       `json:"description"`
	Priority    *int          `json:"priority"`
}

// TaskService wraps task-related business logic.
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Initialize resets the task collection from the seed schedule and
// returns the inserted count. This is a destructive reset: any status
// changes made since the previous initialization are discarded.
func (s *TaskService) Initialize(ctx context.Context) (int, error) {
	entries := schedule.Entries()
	now := time.Now().UTC()

	tasks := make([]model.Task, 0, len(entries))
	for _, e := range entries {
		category := model.Category(e.Category)
		if !category.Valid() {
			return 0, fmt.Errorf("schedule entry %s has unknown category %q", e.Date, e.Category)
		}
		tasks = append(tasks, model.Task{
			ID:          uuid.NewString(),
			Date:        e.Date,
			Category:    category,
			Description: e.Description,
			Status:      model.StatusPending,
			WeekNumber:  e.Week,
			Phase:       e.Phase,
			Priority:    e.Priority,
			CreatedAt:   now,
		})
	}

	if err := s.repo.ReplaceAll(ctx, tasks); err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// List returns tasks matching the filter, never nil.
func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	tasks, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Update applies a partial patch to one task. Setting status to
// COMPLETED stamps completed_at in the same update; setting it to
// PENDING or IN_PROGRESS clears it, so the completed_at invariant never
// goes stale.
func (s *TaskService) Update(ctx context.Context, id string, patch TaskPatch) (*model.Task, error) {
	updates := map[string]interface{}{}

	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, fmt.Errorf("invalid status %q", *patch.Status)
		}
		updates["status"] = *patch.Status
		if *patch.Status == model.StatusCompleted {
			updates["completed_at"] = time.Now().UTC()
		} else {
			updates["completed_at"] = nil
		}
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Priority != nil {
		updates["priority"] = *patch.Priority
	}

	if len(updates) == 0 {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.Update(ctx, id, updates)
}
