package users

import (
	"context"

	"codeberg.org/savant/server/internal/auth"
	"codeberg.org/savant/server/savant/conversions"
	"codeberg.org/savant/server/savant/users"
)

// looks up accounts
type UserFinder interface {
	FindByID(ctx context.Context, userID string) (*users.User, error)
}

// lists a user's conversion history
type HistoryLister interface {
	RecentForUser(ctx context.Context, userID string, limit int) ([]conversions.Record, error)
}

// reports the identity's remaining daily allowance
type QuotaReader interface {
	Remaining(ctx context.Context, id auth.Identity) (int64, error)
}

// changes an account's plan
type PlanUpdater interface {
	UpdatePlan(ctx context.Context, userID, plan string) (*users.User, error)
}

// contains the plan to assign to an account
type UpdatePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// combines the account with its usage state
type MeResponse struct {
	User      *users.User `json:"user"`
	Remaining int64       `json:"conversions_remaining"` // -1 means unlimited
}
