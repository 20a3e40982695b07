package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, store UserStore) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", RegisterHandler(store))
		authGroup.POST("/login", LoginHandler(store))
	}
}
