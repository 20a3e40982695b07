package dashboard

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/savant/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, stats StatsReader) {
	dashboardGroup := router.Group("/dashboard")
	dashboardGroup.Use(auth.AuthMiddleware(), auth.AdminOnly())
	{
		dashboardGroup.GET("/stats", GetStatsHandler(stats))
	}
}
