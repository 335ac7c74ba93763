package main

import (
	"log"

	api "github.com/CHANDANgig/Personalized-To-do-list-app/cmd/api"
	authdomain "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/domain"
	authRepo "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/repository"
	authUsecase "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/usecase"
	habitdomain "github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/domain"
	habitRepo "github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/repository"
	habitUsecase "github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/usecase"
	metricdomain "github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/domain"
	metricRepo "github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/repository"
	metricUsecase "github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/usecase"
	taskdomain "github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/domain"
	taskRepo "github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/repository"
	taskUsecase "github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/usecase"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/clock"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/config"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/database"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/sse"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&taskdomain.Task{},
		&habitdomain.Habit{},
		&metricdomain.DailyMetric{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize SSE manager
	sseManager := sse.NewManager()
	go sseManager.Run()

	// Shared wall clock; tests swap in a fixed one
	clk := clock.Real()

	// Initialize repositories and use cases (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	habitRepository := habitRepo.NewGormHabitRepository(db)
	metricRepository := metricRepo.NewGormMetricRepository(db)

	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository, clk, sseManager)
	habitUc := habitUsecase.NewHabitUsecase(habitRepository, clk, sseManager)
	metricUc := metricUsecase.NewMetricUsecase(metricRepository, clk)

	// Initialize HTTP handler (wires AI provider + insight workers)
	handler := api.NewHandler(authUc, taskUc, habitUc, metricUc, sseManager, clk, cfg)
	defer handler.Stop()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
