package repository

import (
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormMetricRepository implements MetricRepository using GORM
type gormMetricRepository struct {
	db *gorm.DB
}

// NewGormMetricRepository creates a new GORM-based MetricRepository
func NewGormMetricRepository(db *gorm.DB) MetricRepository {
	return &gormMetricRepository{db: db}
}

func (r *gormMetricRepository) Upsert(metric *domain.DailyMetric) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		UpdateAll: true,
	}).Create(metric).Error
}

func (r *gormMetricRepository) FindByUserID(userID string) ([]*domain.DailyMetric, error) {
	var metrics []*domain.DailyMetric
	err := r.db.Where("user_id = ?", userID).
		Order("date ASC").Find(&metrics).Error
	return metrics, err
}
