package delivery

import (
	"net/http"
	"strconv"

	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/domain"
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/usecase"

	"github.com/gin-gonic/gin"
)

// HabitHandler handles habit-related HTTP requests
type HabitHandler struct {
	habitUsecase usecase.HabitUsecase
}

// NewHabitHandler creates a new HabitHandler
func NewHabitHandler(habitUsecase usecase.HabitUsecase) *HabitHandler {
	return &HabitHandler{
		habitUsecase: habitUsecase,
	}
}

// CreateHabitRequest represents the request body for creating a habit
type CreateHabitRequest struct {
	Name     string `json:"name"`
	Goal     int    `json:"goal"`
	Category string `json:"category"`
}

// EditHabitRequest represents the request body for renaming a habit
type EditHabitRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetHabits returns all habits in the current scope
// GET /api/habits
func (h *HabitHandler) GetHabits(c *gin.Context) {
	userID := c.GetString("userID")

	habits, err := h.habitUsecase.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if habits == nil {
		habits = []*domain.Habit{}
	}

	c.JSON(http.StatusOK, gin.H{
		"habits": habits,
		"total":  len(habits),
	})
}

// CreateHabit creates a new habit. Names that trim empty are ignored.
// POST /api/habits
func (h *HabitHandler) CreateHabit(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.habitUsecase.Add(userID, req.Name, req.Goal, req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if habit == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// ToggleDay marks or unmarks one day of the month for a habit
// PATCH /api/habits/:id/days/:day
func (h *HabitHandler) ToggleDay(c *gin.Context) {
	userID := c.GetString("userID")
	habitID := c.Param("id")

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 || day > 31 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be 1..31"})
		return
	}

	habit, err := h.habitUsecase.ToggleDay(userID, habitID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if habit == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// EditHabit renames a habit in place
// PUT /api/habits/:id
func (h *HabitHandler) EditHabit(c *gin.Context) {
	userID := c.GetString("userID")
	habitID := c.Param("id")

	var req EditHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.habitUsecase.Edit(userID, habitID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if habit == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// DeleteHabit removes a habit; absent ids still answer OK
// DELETE /api/habits/:id
func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	userID := c.GetString("userID")
	habitID := c.Param("id")

	if err := h.habitUsecase.Delete(userID, habitID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted"})
}
