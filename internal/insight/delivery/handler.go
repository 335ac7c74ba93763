package delivery

import (
	"net/http"

	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/insight/usecase"

	"github.com/gin-gonic/gin"
)

// InsightHandler handles AI coach panel HTTP requests
type InsightHandler struct {
	insightUsecase usecase.InsightUsecase
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(insightUsecase usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{
		insightUsecase: insightUsecase,
	}
}

// RefreshRequest selects which collection feeds the snapshot
type RefreshRequest struct {
	Kind string `json:"kind"` // "task" (default) or "habit"
}

// GetPanel returns the current panel state
// GET /api/insights
func (h *InsightHandler) GetPanel(c *gin.Context) {
	userID := c.GetString("userID")
	c.JSON(http.StatusOK, h.insightUsecase.Get(userID))
}

// GetInsightsNow synchronously generates insights. Always answers 200:
// provider failures resolve to the fallback payload.
// GET /api/insights/now?kind=habit
func (h *InsightHandler) GetInsightsNow(c *gin.Context) {
	userID := c.GetString("userID")
	kind := c.DefaultQuery("kind", usecase.KindTask)

	insights := h.insightUsecase.RequestNow(c.Request.Context(), userID, kind)
	c.JSON(http.StatusOK, insights)
}

// RefreshInsights queues a background generation; the result is pushed
// over SSE when ready.
// POST /api/insights/refresh
func (h *InsightHandler) RefreshInsights(c *gin.Context) {
	userID := c.GetString("userID")

	var req RefreshRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	h.insightUsecase.Refresh(userID, req.Kind)
	c.JSON(http.StatusAccepted, gin.H{"status": "loading"})
}

// DismissInsights clears the panel; any in-flight result is discarded
// on arrival.
// DELETE /api/insights
func (h *InsightHandler) DismissInsights(c *gin.Context) {
	userID := c.GetString("userID")

	h.insightUsecase.Dismiss(userID)
	c.JSON(http.StatusOK, gin.H{"status": "idle"})
}
