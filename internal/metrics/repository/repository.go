package repository

import "github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/domain"

// MetricRepository defines the interface for daily metric data access
type MetricRepository interface {
	// Upsert replaces the record for (user, date), inserting when absent
	Upsert(metric *domain.DailyMetric) error

	// FindByUserID returns the user's metrics ordered by date ascending
	FindByUserID(userID string) ([]*domain.DailyMetric, error)
}
