package quota

import (
	"context"
	"errors"
	"time"

	"codeberg.org/savant/server/internal/auth"
	"codeberg.org/savant/server/internal/logger"
)

// free-tier successful conversions per calendar day
const DefaultDailyLimit = 5

var ErrQuotaExceeded = errors.New("Daily conversion limit reached (5 files/day). Upgrade to Premium for unlimited conversions.")

// counts successful conversions recorded for an identity inside a window
type Counter interface {
	CountSuccessesBetween(ctx context.Context, id auth.Identity, from, to time.Time) (int64, error)
}

// enforces the per-day conversion allowance for free-tier identities
type Guard struct {
	counter Counter
	limit   int64
	now     func() time.Time
}

func NewGuard(counter Counter) *Guard {
	return &Guard{
		counter: counter,
		limit:   DefaultDailyLimit,
		now:     time.Now,
	}
}

// checks whether the identity may start another conversion; premium and
// admin plans are unlimited, and a failing counter never blocks the user
func (g *Guard) Check(ctx context.Context, id auth.Identity) error {
	if id.Plan.Unlimited() {
		return nil
	}

	from, to := dayWindow(g.now())

	count, err := g.counter.CountSuccessesBetween(ctx, id, from, to)
	if err != nil {
		logger.ErrorErr(err, "quota check failed, allowing conversion",
			"user_id", id.UserID,
			"ip_address", id.IPAddress,
		)
		return nil
	}

	if count >= g.limit {
		return ErrQuotaExceeded
	}

	return nil
}

// returns how many conversions the identity has left today; unlimited
// plans report -1
func (g *Guard) Remaining(ctx context.Context, id auth.Identity) (int64, error) {
	if id.Plan.Unlimited() {
		return -1, nil
	}

	from, to := dayWindow(g.now())

	count, err := g.counter.CountSuccessesBetween(ctx, id, from, to)
	if err != nil {
		return 0, err
	}

	if count >= g.limit {
		return 0, nil
	}

	return g.limit - count, nil
}

// the current calendar day in server-local time, midnight to midnight
func dayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24 * time.Hour)
}
