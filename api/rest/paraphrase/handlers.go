package paraphrase

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/savant/server/internal/auth"
	"codeberg.org/savant/server/internal/errors"
	"codeberg.org/savant/server/internal/llm"
)

// free and premium word allowances per request
const (
	freeWordLimit    = 250
	premiumWordLimit = 500
)

// ParaphraseHandler rewrites submitted text in the requested mode
func ParaphraseHandler(paraphraser llm.Paraphraser, model string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ParaphraseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		text := strings.TrimSpace(req.Text)
		if text == "" {
			errors.BadRequest(c, "text is required", nil)
			return
		}

		mode := req.Mode
		if mode == "" {
			mode = llm.ModeStandard
		}

		identity := auth.ResolveIdentity(c)

		limit := freeWordLimit
		if identity.Plan.Unlimited() {
			limit = premiumWordLimit
		}

		words := len(strings.Fields(text))
		if words > limit {
			errors.BadRequest(c, fmt.Sprintf(
				"text exceeds the %d word limit (%d words). Upgrade to Premium for a %d word limit.",
				limit, words, premiumWordLimit,
			), nil)
			return
		}

		result, err := paraphraser.Paraphrase(c.Request.Context(), text, mode)
		if err != nil {
			errors.InternalError(c, "failed to paraphrase text", err)
			return
		}

		c.JSON(http.StatusOK, ParaphraseResponse{
			Original:    text,
			Paraphrased: strings.TrimSpace(result),
			WordCount:   words,
			Mode:        mode,
			Model:       model,
		})
	}
}
