package model

import "time"

// Category classifies a task's nature within the preparation plan.
type Category string

const (
	CategoryDSA     Category = "DSA"
	CategoryProject Category = "PROJECT"
	CategoryLearn   Category = "LEARN"
	CategoryOps     Category = "OPS"
	CategoryApply   Category = "APPLY"
)

// Categories lists every valid task category.
var Categories = []Category{CategoryDSA, CategoryProject, CategoryLearn, CategoryOps, CategoryApply}

func (c Category) Valid() bool {
	switch c {
	case CategoryDSA, CategoryProject, CategoryLearn, CategoryOps, CategoryApply:
		return true
	}
	return false
}

// Status is the three-valued completion state of a task.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a single item in the preparation schedule.
// CompletedAt is non-nil exactly while Status is COMPLETED.
type Task struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Date        string     `gorm:"index" json:"date"`
	Category    Category   `gorm:"index" json:"category"`
	Description string     `json:"description"`
	Status      Status     `gorm:"index;default:PENDING" json:"status"`
	WeekNumber  int        `gorm:"index" json:"week_number"`
	Phase       string     `json:"phase"`
	Priority    int        `gorm:"default:1" json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
