package cryptox

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"
)

// MinCost is the lowest bcrypt work factor HashPassword will use.
const MinCost = bcrypt.DefaultCost

// MaxPasswordBytes is the bcrypt input limit. Longer inputs are rejected
// rather than silently truncated.
const MaxPasswordBytes = 72

var (
	ErrMismatch    = errors.New("password does not match")
	ErrTooLong     = errors.New("password exceeds 72 bytes")
	ErrInvalidHash = errors.New("invalid password hash")
)

var cost atomic.Int32

func init() { cost.Store(int32(MinCost)) }

// SetCost changes the work factor for hashes created from now on. Existing
// hashes keep verifying since bcrypt stores the cost in the hash.
func SetCost(c int) error {
	if c < MinCost || c > bcrypt.MaxCost {
		return fmt.Errorf("cryptox: bcrypt cost %d out of range [%d, %d]", c, MinCost, bcrypt.MaxCost)
	}
	cost.Store(int32(c)) // #nosec G115 - bounded by bcrypt.MaxCost
	return nil
}

// Cost returns the current work factor.
func Cost() int { return int(cost.Load()) }

// HashPassword returns a salted bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), Cost())
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares password with a hash produced by HashPassword.
func VerifyPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// BurnVerify runs a comparison against a throwaway hash so that a lookup
// miss costs as much as a wrong password.
func BurnVerify(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password-0"), Cost())
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
