package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// subscription tier attached to an account; assigned by the payment
// collaborator or an admin override, only ever read here
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
	PlanAdmin   Plan = "admin"
)

// reports whether the plan bypasses free-tier daily caps
func (p Plan) Unlimited() bool {
	return p == PlanPremium || p == PlanAdmin
}

// represents JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Plan   string `json:"plan"`
	jwt.RegisteredClaims
}

// identifies the caller of a request: the account id for logged-in
// users, or the source IP address as an anonymous fallback
type Identity struct {
	UserID    string
	Plan      Plan
	IPAddress string
	UserAgent string
}

// reports whether the identity belongs to a logged-in account
func (i Identity) Authenticated() bool {
	return i.UserID != ""
}
