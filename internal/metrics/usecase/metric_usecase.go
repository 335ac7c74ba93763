package usecase

import (
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/domain"
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/repository"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/clock"
)

// MetricUsecase defines the interface for daily metric business logic
type MetricUsecase interface {
	// Upsert records the metrics for one calendar date, replacing any
	// existing record for that date. An empty date means today.
	// Out-of-range values are clamped, not rejected.
	Upsert(userID string, metric domain.DailyMetric) (*domain.DailyMetric, error)

	// List returns all metrics ordered by date ascending.
	List(userID string) ([]*domain.DailyMetric, error)

	// Recent returns the trailing n records (by date).
	Recent(userID string, n int) ([]*domain.DailyMetric, error)
}

type metricUsecase struct {
	metricRepo repository.MetricRepository
	clock      clock.Clock
}

// NewMetricUsecase creates a new instance of metricUsecase
func NewMetricUsecase(metricRepo repository.MetricRepository, clk clock.Clock) MetricUsecase {
	return &metricUsecase{
		metricRepo: metricRepo,
		clock:      clk,
	}
}

func (u *metricUsecase) Upsert(userID string, metric domain.DailyMetric) (*domain.DailyMetric, error) {
	metric.UserID = userID
	if metric.Date == "" {
		metric.Date = u.clock.Now().Format(domain.DateLayout)
	}
	metric.Clamp()

	if err := u.metricRepo.Upsert(&metric); err != nil {
		return nil, err
	}
	return &metric, nil
}

func (u *metricUsecase) List(userID string) ([]*domain.DailyMetric, error) {
	return u.metricRepo.FindByUserID(userID)
}

func (u *metricUsecase) Recent(userID string, n int) ([]*domain.DailyMetric, error) {
	metrics, err := u.metricRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(metrics) > n {
		metrics = metrics[len(metrics)-n:]
	}
	return metrics, nil
}
