package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultOpenRouterModel = "google/gemini-flash-1.5"

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	openRouterKey := os.Getenv("OPENROUTER_API_KEY")
	openRouterModel := os.Getenv("OPENROUTER_MODEL")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if openRouterKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY environment variable is required")
	}

	if openRouterModel == "" {
		openRouterModel = defaultOpenRouterModel
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseURL:     databaseURL,
		JWTSecret:       jwtSecret,
		OpenRouterKey:   openRouterKey,
		OpenRouterModel: openRouterModel,
		Environment:     environment,
	}, nil
}
