package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authroutes "codeberg.org/savant/server/api/rest/auth"
	"codeberg.org/savant/server/api/rest/convert"
	"codeberg.org/savant/server/api/rest/dashboard"
	"codeberg.org/savant/server/api/rest/health"
	"codeberg.org/savant/server/api/rest/paraphrase"
	usersroutes "codeberg.org/savant/server/api/rest/users"
	"codeberg.org/savant/server/internal/ratelimit"
)

// per-IP request allowance for the public API
const apiRateLimit = "30-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")
	v1.Use(ratelimit.Middleware(apiRateLimit))

	{
		v1.GET("/ping", health.PingHandler)

		authroutes.RegisterRoutes(v1, server.userRepo)
		convert.RegisterRoutes(v1, server.guard, server.dispatcher, server.recorder)
		paraphrase.RegisterRoutes(v1, server.services.Paraphraser, server.config.OpenRouterModel)
		usersroutes.RegisterRoutes(v1, server.userRepo, server.guard, server.conversionRepo, server.userRepo)
		dashboard.RegisterRoutes(v1, server.conversionRepo)
	}
}

// allows browser clients on other origins to call the API
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
