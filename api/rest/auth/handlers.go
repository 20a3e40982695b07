package auth

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"codeberg.org/savant/server/internal/auth"
	"codeberg.org/savant/server/internal/errors"
	"codeberg.org/savant/server/savant/users"
)

const bcryptCost = 10

// RegisterHandler creates a new free-tier account and issues a token
func RegisterHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			errors.InternalError(c, "failed to create account", err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		user, err := store.Create(c.Request.Context(), req.Name, email, string(hash), string(auth.PlanFree))
		if err != nil {
			if stderrors.Is(err, users.ErrDuplicateEmail) {
				errors.BadRequest(c, err.Error(), nil)
				return
			}

			errors.InternalError(c, "failed to create account", err)
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email, auth.ParsePlan(user.Plan))
		if err != nil {
			errors.InternalError(c, "failed to issue token", err)
			return
		}

		c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
	}
}

// LoginHandler verifies credentials and issues a token
func LoginHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		user, err := store.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if stderrors.Is(err, users.ErrNotFound) {
				errors.Unauthorized(c, "invalid email or password")
				return
			}

			errors.InternalError(c, "failed to log in", err)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			errors.Unauthorized(c, "invalid email or password")
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email, auth.ParsePlan(user.Plan))
		if err != nil {
			errors.InternalError(c, "failed to issue token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
	}
}
