package model

import "time"

// AIRecommendation logs one reply from the coaching model. Records are
// append-only; nothing in the system mutates or deletes them.
type AIRecommendation struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Date            string    `gorm:"index" json:"date"`
	Recommendations []string  `gorm:"serializer:json" json:"recommendations"`
	FocusAreas      []string  `gorm:"serializer:json" json:"focus_areas"`
	PriorityTasks   []string  `gorm:"serializer:json" json:"priority_tasks"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}
