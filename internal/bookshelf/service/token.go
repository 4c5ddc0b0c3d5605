package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/bookshelf/pkg/jwtx"
)

// TokenService issues and verifies session tokens with one process-wide
// secret. It is safe for concurrent use.
type TokenService struct {
	key *jwtx.HS256
	ttl time.Duration
	now func() time.Time
}

var _ jwtx.Verifier = (*TokenService)(nil)

// NewTokenService fails with ErrMissingSecret when secret is empty. A
// non-positive ttl means jwtx.DefaultTTL.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	key, err := jwtx.NewHS256([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if ttl <= 0 {
		ttl = jwtx.DefaultTTL
	}
	return &TokenService{key: key, ttl: ttl, now: time.Now}, nil
}

// WithClock returns a copy that issues and verifies against now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	return &TokenService{key: s.key.WithClock(now), ttl: s.ttl, now: now}
}

// TTL is the lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue signs a token for subjectID carrying the role at issue time.
func (s *TokenService) Issue(subjectID string, isAdmin bool) (string, error) {
	tok, err := s.key.Sign(jwtx.NewClaims(subjectID, isAdmin, s.ttl, s.now()))
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return tok, nil
}

// Verify returns the claims of a well-formed, correctly signed, unexpired
// token. Every failure matches jwtx.ErrInvalidToken.
func (s *TokenService) Verify(token string) (jwtx.Claims, error) {
	return s.key.Verify(token)
}
