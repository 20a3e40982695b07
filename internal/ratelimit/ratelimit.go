package ratelimit

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"codeberg.org/savant/server/internal/logger"
)

// builds a per-IP rate limiting middleware from a formatted rate such
// as "30-M"; an unparsable rate is a startup bug, so it is fatal
func Middleware(formatted string) gin.HandlerFunc {
	r, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		logger.FatalErr(err, "invalid rate limit format", "rate", formatted)
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), r))
}
