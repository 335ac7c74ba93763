package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	SQLitePath      string
	JWTSecret       string
	JWTAccessExpiry time.Duration
	AIProvider      string
	GeminiAPIKey    string
	OllamaBaseURL   string
	OllamaModel     string
	InsightTimeout  time.Duration
	InsightWorkers  int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 24 * time.Hour
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	insightTimeout := 20 * time.Second
	if t := os.Getenv("INSIGHT_TIMEOUT"); t != "" {
		if parsed, err := time.ParseDuration(t); err == nil {
			insightTimeout = parsed
		}
	}

	insightWorkers := 2
	if w := os.Getenv("INSIGHT_WORKERS"); w != "" {
		if parsed, err := strconv.Atoi(w); err == nil && parsed > 0 {
			insightWorkers = parsed
		}
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		SQLitePath:      getEnv("SQLITE_PATH", "zenith.db"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry: accessExpiry,
		AIProvider:      getEnv("AI_PROVIDER", "auto"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:     getEnv("OLLAMA_MODEL", "llama3"),
		InsightTimeout:  insightTimeout,
		InsightWorkers:  insightWorkers,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
