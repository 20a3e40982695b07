package paraphrase

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/savant/server/internal/auth"
	"codeberg.org/savant/server/internal/llm"
)

func RegisterRoutes(router *gin.RouterGroup, paraphraser llm.Paraphraser, model string) {
	// anonymous callers get the free-tier word limit
	router.POST("/paraphrase", auth.OptionalAuthMiddleware(), ParaphraseHandler(paraphraser, model))
}
