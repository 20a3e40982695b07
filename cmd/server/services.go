package main

import (
	"codeberg.org/savant/server/internal/config"
	"codeberg.org/savant/server/internal/llm"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config) *Services {
	paraphraser := llm.NewOpenRouterClient(llm.Config{
		APIKey: cfg.OpenRouterKey,
		Model:  cfg.OpenRouterModel,
	})

	return &Services{
		Paraphraser: paraphraser,
	}
}
