package delivery

import (
	"net/http"

	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/domain"
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/usecase"

	"github.com/gin-gonic/gin"
)

// MetricHandler handles daily metric HTTP requests
type MetricHandler struct {
	metricUsecase usecase.MetricUsecase
}

// NewMetricHandler creates a new MetricHandler
func NewMetricHandler(metricUsecase usecase.MetricUsecase) *MetricHandler {
	return &MetricHandler{
		metricUsecase: metricUsecase,
	}
}

// UpsertMetricRequest represents one day's self-report
type UpsertMetricRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD, defaults to today
	ScreenTime  int    `json:"screen_time"`
	Mood        int    `json:"mood"`
	Energy      int    `json:"energy"`
	Achievement string `json:"achievement"`
}

// GetMetrics returns the full metric series ordered by date
// GET /api/metrics
func (h *MetricHandler) GetMetrics(c *gin.Context) {
	userID := c.GetString("userID")

	metrics, err := h.metricUsecase.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if metrics == nil {
		metrics = []*domain.DailyMetric{}
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// UpsertMetric replaces the record for one calendar date
// PUT /api/metrics
func (h *MetricHandler) UpsertMetric(c *gin.Context) {
	userID := c.GetString("userID")

	var req UpsertMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metric, err := h.metricUsecase.Upsert(userID, domain.DailyMetric{
		Date:        req.Date,
		ScreenTime:  req.ScreenTime,
		Mood:        req.Mood,
		Energy:      req.Energy,
		Achievement: req.Achievement,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, metric)
}
