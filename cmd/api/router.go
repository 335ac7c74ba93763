package api

import (
	"net/http"

	authDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/delivery"
	authUsecase "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/usecase"
	habitDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/delivery"
	insightDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/insight/delivery"
	metricDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/delivery"
	statsDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/stats/delivery"
	taskDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/delivery"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/sse"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint. Collection endpoints run behind the
// scope middleware: a valid token selects the user's collection, no
// token selects the guest collection.
func SetupRoutes(
	r *gin.Engine,
	authUc authUsecase.AuthUsecase,
	authHandler *authDelivery.AuthHandler,
	taskHandler *taskDelivery.TaskHandler,
	habitHandler *habitDelivery.HabitHandler,
	metricHandler *metricDelivery.MetricHandler,
	statsHandler *statsDelivery.StatsHandler,
	insightHandler *insightDelivery.InsightHandler,
	sseManager *sse.Manager,
) {
	scoped := authDelivery.ScopeMiddleware(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// SSE endpoint for collection-change and insight events
		api.GET("/events", scoped, func(c *gin.Context) {
			userID := c.GetString("userID")
			sseManager.ServeHTTP(c, userID)
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		// Task routes (scoped)
		tasks := api.Group("/tasks")
		tasks.Use(scoped)
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/search", taskHandler.SearchTasks)
			tasks.PATCH("/:id/toggle", taskHandler.ToggleTask)
			tasks.PUT("/:id", taskHandler.EditTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Habit routes (scoped)
		habits := api.Group("/habits")
		habits.Use(scoped)
		{
			habits.GET("", habitHandler.GetHabits)
			habits.POST("", habitHandler.CreateHabit)
			habits.PATCH("/:id/days/:day", habitHandler.ToggleDay)
			habits.PUT("/:id", habitHandler.EditHabit)
			habits.DELETE("/:id", habitHandler.DeleteHabit)
		}

		// Daily metric routes (scoped)
		metrics := api.Group("/metrics")
		metrics.Use(scoped)
		{
			metrics.GET("", metricHandler.GetMetrics)
			metrics.PUT("", metricHandler.UpsertMetric)
		}

		// Derived stats (scoped, recomputed per request)
		statsGroup := api.Group("/stats")
		statsGroup.Use(scoped)
		{
			statsGroup.GET("/daily", statsHandler.GetDailyStats)
			statsGroup.GET("/lifetime", statsHandler.GetLifetimeStats)
			statsGroup.GET("/habits/monthly", statsHandler.GetMonthlyCompliance)
			statsGroup.GET("/habits/weekly", statsHandler.GetWeeklyFrequency)
			statsGroup.GET("/habits/today", statsHandler.GetTodayCompliance)
		}

		// AI coach panel (scoped)
		insights := api.Group("/insights")
		insights.Use(scoped)
		{
			insights.GET("", insightHandler.GetPanel)
			insights.GET("/now", insightHandler.GetInsightsNow)
			insights.POST("/refresh", insightHandler.RefreshInsights)
			insights.DELETE("", insightHandler.DismissInsights)
		}

		// Settings routes (public) - Runtime provider configuration
		settings := api.Group("/settings")
		{
			settings.GET("/coach", GetCoachSettings)
			settings.PUT("/coach", UpdateCoachSettings)
			settings.POST("/coach/test", TestCoachConnection)
		}
	}
}
