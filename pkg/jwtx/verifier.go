package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// ErrInvalidToken wraps every verification failure. Callers that only need
// to know "good or not" check for this one.
var ErrInvalidToken = errors.New("jwtx: invalid token")

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// classify maps golang-jwt errors onto ours, always wrapped in ErrInvalidToken.
func classify(err error) error {
	var cause error
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		cause = ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		cause = ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		cause = ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		cause = ErrNotYetValid
	case errors.Is(err, ErrInvalidClaim):
		cause = ErrInvalidClaim
	default:
		cause = fmt.Errorf("%w: %w", ErrInvalidClaim, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidToken, cause)
}
