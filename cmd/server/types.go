package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/savant/server/internal/config"
	"codeberg.org/savant/server/internal/dispatch"
	"codeberg.org/savant/server/internal/llm"
	"codeberg.org/savant/server/internal/quota"
	"codeberg.org/savant/server/internal/tracking"
	"codeberg.org/savant/server/savant/conversions"
	"codeberg.org/savant/server/savant/users"
)

// holds all dependencies and state for the API server
type Server struct {
	db             *pgxpool.Pool
	config         *config.Config
	userRepo       *users.Repository
	conversionRepo *conversions.Repository
	guard          *quota.Guard
	recorder       *tracking.Recorder
	dispatcher     *dispatch.Dispatcher
	services       *Services
	router         *gin.Engine
}

// holds all external service clients
type Services struct {
	Paraphraser llm.Paraphraser
}
