package api

import (
	"log"

	authDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/delivery"
	authUsecase "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/usecase"
	habitDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/delivery"
	habitUsecasePkg "github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/usecase"
	insightDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/insight/delivery"
	insightUsecasePkg "github.com/CHANDANgig/Personalized-To-do-list-app/internal/insight/usecase"
	metricDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/delivery"
	metricUsecasePkg "github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/usecase"
	statsDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/stats/delivery"
	taskDelivery "github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/delivery"
	taskUsecasePkg "github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/usecase"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/ai"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/clock"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/config"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/sse"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	insightUsecase insightUsecasePkg.InsightUsecase
	sseManager     *sse.Manager
	config         *config.Config

	authHandler    *authDelivery.AuthHandler
	taskHandler    *taskDelivery.TaskHandler
	habitHandler   *habitDelivery.HabitHandler
	metricHandler  *metricDelivery.MetricHandler
	statsHandler   *statsDelivery.StatsHandler
	insightHandler *insightDelivery.InsightHandler
}

// NewHandler wires the AI provider, the insight workers, and every
// delivery handler around the already-constructed usecases.
func NewHandler(
	authUc authUsecase.AuthUsecase,
	taskUc taskUsecasePkg.TaskUsecase,
	habitUc habitUsecasePkg.HabitUsecase,
	metricUc metricUsecasePkg.MetricUsecase,
	sseManager *sse.Manager,
	clk clock.Clock,
	cfg *config.Config,
) *Handler {
	// Initialize runtime config for the settings API
	InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	// Initialize the AI provider with dynamic Ollama getters so runtime
	// settings updates apply without a restart
	aiService, err := ai.NewInsightService(ai.Config{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:     cfg.GeminiAPIKey,
		GetOllamaBaseURL: GetRuntimeOllamaBaseURL,
		GetOllamaModel:   GetRuntimeOllamaModel,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize AI provider: %v (insights degrade to fallback)", err)
	} else {
		log.Printf("AI provider initialized: %s", cfg.AIProvider)
	}

	insightUc := insightUsecasePkg.NewInsightUsecase(
		taskUc, habitUc, metricUc, aiService, sseManager, clk,
		cfg.InsightTimeout, cfg.InsightWorkers,
	)

	return &Handler{
		authUsecase:    authUc,
		insightUsecase: insightUc,
		sseManager:     sseManager,
		config:         cfg,
		authHandler:    authDelivery.NewAuthHandler(authUc),
		taskHandler:    taskDelivery.NewTaskHandler(taskUc),
		habitHandler:   habitDelivery.NewHabitHandler(habitUc),
		metricHandler:  metricDelivery.NewMetricHandler(metricUc),
		statsHandler:   statsDelivery.NewStatsHandler(taskUc, habitUc, clk),
		insightHandler: insightDelivery.NewInsightHandler(insightUc),
	}
}

// Stop drains background workers.
func (h *Handler) Stop() {
	h.insightUsecase.Stop()
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.taskHandler, h.habitHandler,
		h.metricHandler, h.statsHandler, h.insightHandler, h.sseManager)

	return r.Run(addr)
}
