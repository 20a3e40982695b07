package dashboard

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/savant/server/internal/errors"
	"codeberg.org/savant/server/savant/conversions"
)

// aggregates conversion usage numbers
type StatsReader interface {
	StatsSince(ctx context.Context, since time.Time) (*conversions.Stats, error)
}

// default reporting window
const defaultWindowDays = 30

// GetStatsHandler reports aggregate conversion stats for the admin
// dashboard; the window defaults to the last 30 days
func GetStatsHandler(stats StatsReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := defaultWindowDays
		if raw := c.Query("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 365 {
				errors.BadRequest(c, "days must be between 1 and 365", nil)
				return
			}

			days = parsed
		}

		since := time.Now().AddDate(0, 0, -days)

		result, err := stats.StatsSince(c.Request.Context(), since)
		if err != nil {
			errors.InternalError(c, "failed to load stats", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"since": since,
			"stats": result,
		})
	}
}
