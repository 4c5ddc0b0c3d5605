package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSecret is returned when an HS256 key is built from an empty
// secret.
var ErrMissingSecret = errors.New("jwtx: signing secret is empty")

// HS256 signs and verifies tokens with a single shared secret. It is both a
// Signer and a Verifier and is safe for concurrent use.
type HS256 struct {
	secret []byte
	now    func() time.Time
}

var (
	_ Signer   = (*HS256)(nil)
	_ Verifier = (*HS256)(nil)
)

// NewHS256 copies secret so later changes by the caller have no effect.
func NewHS256(secret []byte) (*HS256, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	return &HS256{
		secret: append([]byte(nil), secret...),
		now:    time.Now,
	}, nil
}

// WithClock returns a copy that validates expiry against now instead of the
// wall clock.
func (h *HS256) WithClock(now func() time.Time) *HS256 {
	cp := *h
	cp.now = now
	return &cp
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign serialises claims into a compact JWS.
func (h *HS256) Sign(claims Claims) (string, error) {
	if err := claims.Validate(); err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return tok, nil
}

// Verify checks signature, algorithm and expiry. Tokens without an exp
// claim are rejected.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}
	if !token.Valid {
		return Claims{}, classify(ErrInvalidClaim)
	}
	if err := claims.Validate(); err != nil {
		return Claims{}, classify(err)
	}
	return claims, nil
}
