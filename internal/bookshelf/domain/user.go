package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string // stored lowercased
	PasswordHash string // bcrypt, never leaves the service layer
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public returns a copy with the password hash cleared, safe to hand to
// transports.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
