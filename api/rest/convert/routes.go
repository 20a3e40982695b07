package convert

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/savant/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, guard QuotaChecker, converter Converter, recorder AuditRecorder) {
	// anonymous users convert against an IP-based allowance
	router.POST("/convert", auth.OptionalAuthMiddleware(), ConvertHandler(guard, converter, recorder))
}
