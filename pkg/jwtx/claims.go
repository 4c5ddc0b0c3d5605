package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long a session token stays valid when the service does
// not configure a lifetime.
const DefaultTTL = 90 * 24 * time.Hour

// Claims are the session-token claims. The role claim is informational only:
// the authenticator reloads the user on every request and trusts the record.
type Claims struct {
	jwt.RegisteredClaims

	// UserID mirrors the subject under the "id" claim.
	UserID string `json:"id"`

	// IsAdmin is the role at the time the token was issued.
	IsAdmin bool `json:"isAdmin"`
}

// NewClaims builds claims for userID that expire ttl after now.
func NewClaims(userID string, isAdmin bool, ttl time.Duration, now time.Time) Claims {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now = now.UTC()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:  userID,
		IsAdmin: isAdmin,
	}
}

// Validate checks the claims that golang-jwt does not know about.
func (c *Claims) Validate() error {
	if c.UserID == "" {
		return ErrInvalidClaim
	}
	if c.Subject != "" && c.Subject != c.UserID {
		return ErrInvalidClaim
	}
	return nil
}
