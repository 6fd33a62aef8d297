package model

// WeeklyProgress is the aggregation result for one (week, phase) group.
// CertificationsEarned is kept for payload compatibility; nothing
// populates it yet.
type WeeklyProgress struct {
	WeekNumber           int     `json:"week_number"`
	Phase                string  `json:"phase"`
	TotalTasks           int     `json:"total_tasks"`
	CompletedTasks       int     `json:"completed_tasks"`
	DSACompleted         int     `gorm:"column:dsa_completed" json:"dsa_completed"`
	ProjectsCompleted    int     `json:"projects_completed"`
	ApplicationsSent     int     `json:"applications_sent"`
	CertificationsEarned int     `gorm:"-" json:"certifications_earned"`
	CompletionPercentage float64 `gorm:"-" json:"completion_percentage"`
}

// CategoryStat holds per-category counts within a single day.
type CategoryStat struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// DailyProgress summarizes one calendar date.
type DailyProgress struct {
	Date                 string                    `json:"date"`
	TotalTasks           int                       `json:"total_tasks"`
	CompletedTasks       int                       `json:"completed_tasks"`
	CompletionPercentage float64                   `json:"completion_percentage"`
	CategoryStats        map[Category]CategoryStat `json:"category_stats"`
	Tasks                []Task                    `json:"tasks"`
}

// OverviewStats are the global completion counters.
type OverviewStats struct {
	TotalTasks        int     `json:"total_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
	OverallCompletion float64 `json:"overall_completion"`
}

// TodaySummary is the today block of the dashboard overview.
type TodaySummary struct {
	Date                 string  `json:"date"`
	TotalTasks           int     `json:"total_tasks"`
	CompletedTasks       int     `json:"completed_tasks"`
	CompletionPercentage float64 `json:"completion_percentage"`
	Tasks                []Task  `json:"tasks"`
}

// WeekSummary is the current-week block of the dashboard overview.
type WeekSummary struct {
	WeekNumber           int     `json:"week_number"`
	TotalTasks           int     `json:"total_tasks"`
	CompletedTasks       int     `json:"completed_tasks"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// CategoryDistribution holds all-time counts for one category.
type CategoryDistribution struct {
	Category  Category `json:"category"`
	Total     int      `json:"total"`
	Completed int      `json:"completed"`
}

// DashboardOverview is the composite payload for the dashboard.
type DashboardOverview struct {
	Overview             OverviewStats          `json:"overview"`
	Today                TodaySummary           `json:"today"`
	CurrentWeek          WeekSummary            `json:"current_week"`
	CategoryDistribution []CategoryDistribution `json:"category_distribution"`
}
