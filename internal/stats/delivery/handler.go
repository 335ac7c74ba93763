package delivery

import (
	"net/http"
	"strconv"

	habitUsecase "github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/usecase"
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/stats"
	taskUsecase "github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/usecase"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/clock"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the derived chart views. Nothing here is stored:
// every response is recomputed from the current collections.
type StatsHandler struct {
	taskUsecase  taskUsecase.TaskUsecase
	habitUsecase habitUsecase.HabitUsecase
	clock        clock.Clock
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(taskUc taskUsecase.TaskUsecase, habitUc habitUsecase.HabitUsecase, clk clock.Clock) *StatsHandler {
	return &StatsHandler{
		taskUsecase:  taskUc,
		habitUsecase: habitUc,
		clock:        clk,
	}
}

// GetDailyStats returns the trailing-window task chart buckets
// GET /api/stats/daily?days=7
func (h *StatsHandler) GetDailyStats(c *gin.Context) {
	userID := c.GetString("userID")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	tasks, err := h.taskUsecase.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily": stats.DailyTaskStats(tasks, h.clock.Now(), days),
	})
}

// GetLifetimeStats returns collection-wide task totals
// GET /api/stats/lifetime
func (h *StatsHandler) GetLifetimeStats(c *gin.Context) {
	userID := c.GetString("userID")

	tasks, err := h.taskUsecase.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats.LifetimeTaskStats(tasks))
}

// GetMonthlyCompliance returns done-vs-expected for the current month
// GET /api/stats/habits/monthly
func (h *StatsHandler) GetMonthlyCompliance(c *gin.Context) {
	userID := c.GetString("userID")

	habits, err := h.habitUsecase.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats.MonthlyCompliance(habits, h.clock.Now()))
}

// GetWeeklyFrequency returns the last-7-days habit frequency points
// GET /api/stats/habits/weekly
func (h *StatsHandler) GetWeeklyFrequency(c *gin.Context) {
	userID := c.GetString("userID")

	habits, err := h.habitUsecase.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weekly": stats.WeeklyFrequency(habits, h.clock.Now()),
	})
}

// GetTodayCompliance returns habits done today vs the habit count
// GET /api/stats/habits/today
func (h *StatsHandler) GetTodayCompliance(c *gin.Context) {
	userID := c.GetString("userID")

	habits, err := h.habitUsecase.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats.TodayCompliance(habits, h.clock.Now()))
}
