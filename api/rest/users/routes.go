package users

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/savant/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, finder UserFinder, quotas QuotaReader, history HistoryLister, plans PlanUpdater) {
	usersGroup := router.Group("/users")
	usersGroup.Use(auth.AuthMiddleware())
	{
		usersGroup.GET("/me", GetMeHandler(finder, quotas))
		usersGroup.GET("/me/conversions", GetMyConversionsHandler(history))
		usersGroup.PUT("/:id/plan", auth.AdminOnly(), UpdateUserPlanHandler(plans))
	}
}
