package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ParsePriority maps arbitrary input to a valid priority, defaulting to
// MEDIUM.
func ParsePriority(p string) Priority {
	switch Priority(p) {
	case PriorityLow:
		return PriorityLow
	case PriorityHigh:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// Task is a single to-do line item. CompletedAt is set exactly when
// Completed is true; CreatedAt never changes after creation.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Text        string     `json:"text" gorm:"not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	Priority    Priority   `json:"priority" gorm:"default:MEDIUM"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
