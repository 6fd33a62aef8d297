package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"prep-dashboard/internal/model"
)

// Fixed, non-configurable result ceilings. Large enough to cover the
// full seeded schedule with ample headroom.
const (
	taskQueryLimit      = 1000
	aggregateQueryLimit = 100
)

// ErrTaskNotFound is returned when no task matches the requested id.
var ErrTaskNotFound = errors.New("task not found")

// TaskFilter holds optional equality predicates; set fields combine
// with logical AND, nil fields are unconstrained.
type TaskFilter struct {
	Category   *model.Category
	Status     *model.Status
	WeekNumber *int
	Date       *string
}

// TaskRepository handles CRUD and aggregation over tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ReplaceAll removes every stored task and bulk-inserts the given set.
func (r *TaskRepository) ReplaceAll(ctx context.Context, tasks []model.Task) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM tasks").Error; err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil
	}
	if err := db.Create(&tasks).Error; err != nil {
		return fmt.Errorf("insert tasks: %w", err)
	}
	return nil
}

// List returns tasks matching the filter, ordered by date ascending.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.applyFilter(ctx, filter).
		Order("date ASC").
		Limit(taskQueryLimit).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrTaskNotFound
	case err != nil:
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

// Update applies the given column set to one task and returns the
// post-update row. ErrTaskNotFound when the id matches nothing.
func (r *TaskRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.Task, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}
	return r.FindByID(ctx, id)
}

// Count returns the number of tasks matching the filter.
func (r *TaskRepository) Count(ctx context.Context, filter TaskFilter) (int64, error) {
	var count int64
	if err := r.applyFilter(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

// WeeklyAggregate groups tasks by (week_number, phase) and computes
// total, completed and per-category completed counts. Percentages are
// left for the caller to derive.
func (r *TaskRepository) WeeklyAggregate(ctx context.Context) ([]model.WeeklyProgress, error) {
	var rows []model.WeeklyProgress
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select(`week_number,
			phase,
			COUNT(*) AS total_tasks,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed_tasks,
			SUM(CASE WHEN category = ? AND status = ? THEN 1 ELSE 0 END) AS dsa_completed,
			SUM(CASE WHEN category = ? AND status = ? THEN 1 ELSE 0 END) AS projects_completed,
			SUM(CASE WHEN category = ? AND status = ? THEN 1 ELSE 0 END) AS applications_sent`,
			model.StatusCompleted,
			model.CategoryDSA, model.StatusCompleted,
			model.CategoryProject, model.StatusCompleted,
			model.CategoryApply, model.StatusCompleted).
		Group("week_number, phase").
		Order("week_number ASC").
		Limit(aggregateQueryLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("weekly aggregate: %w", err)
	}
	return rows, nil
}

// CategoryAggregate computes all-time total and completed counts per
// category, in whatever order the grouping yields.
func (r *TaskRepository) CategoryAggregate(ctx context.Context) ([]model.CategoryDistribution, error) {
	var rows []model.CategoryDistribution
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select(`category,
			COUNT(*) AS total,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed`,
			model.StatusCompleted).
		Group("category").
		Limit(aggregateQueryLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("category aggregate: %w", err)
	}
	return rows, nil
}

func (r *TaskRepository) applyFilter(ctx context.Context, filter TaskFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Task{})
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.WeekNumber != nil {
		q = q.Where("week_number = ?", *filter.WeekNumber)
	}
	if filter.Date != nil {
		q = q.Where("date = ?", *filter.Date)
	}
	return q
}
