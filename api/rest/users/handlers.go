package users

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codeberg.org/savant/server/internal/auth"
	"codeberg.org/savant/server/internal/errors"
	"codeberg.org/savant/server/savant/users"
)

const defaultHistoryLimit = 20

// GetMeHandler returns the authenticated account with its remaining
// daily allowance
func GetMeHandler(finder UserFinder, quotas QuotaReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		user, err := finder.FindByID(c.Request.Context(), userID)
		if err != nil {
			if stderrors.Is(err, users.ErrNotFound) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to load user", err)
			return
		}

		identity := auth.ResolveIdentity(c)

		remaining, err := quotas.Remaining(c.Request.Context(), identity)
		if err != nil {
			errors.InternalError(c, "failed to load usage", err)
			return
		}

		c.JSON(http.StatusOK, MeResponse{User: user, Remaining: remaining})
	}
}

// UpdateUserPlanHandler assigns a plan to an account; admin-only, used
// for manual tier overrides outside the payment flow
func UpdateUserPlanHandler(plans PlanUpdater) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		switch auth.Plan(req.Plan) {
		case auth.PlanFree, auth.PlanPremium, auth.PlanAdmin:
		default:
			errors.BadRequest(c, "plan must be free, premium or admin", nil)
			return
		}

		user, err := plans.UpdatePlan(c.Request.Context(), c.Param("id"), req.Plan)
		if err != nil {
			if stderrors.Is(err, users.ErrNotFound) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to update plan", err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GetMyConversionsHandler lists the authenticated user's recent
// conversions, newest first
func GetMyConversionsHandler(history HistoryLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		limit := defaultHistoryLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 100 {
				errors.BadRequest(c, "limit must be between 1 and 100", nil)
				return
			}

			limit = parsed
		}

		records, err := history.RecentForUser(c.Request.Context(), userID, limit)
		if err != nil {
			errors.InternalError(c, "failed to load conversions", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"conversions": records})
	}
}
