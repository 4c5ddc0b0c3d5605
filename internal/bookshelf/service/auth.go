package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"github.com/aussiebroadwan/bookshelf/pkg/cryptox"
	"github.com/aussiebroadwan/bookshelf/pkg/idx"
	"github.com/aussiebroadwan/bookshelf/pkg/slogx"
)

// Session is what register and login hand back: the public user record and
// a freshly issued token.
type Session struct {
	User  domain.User
	Token string
}

type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// Register creates a non-admin user and signs them in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	log := slogx.FromContext(ctx)

	in.normalize()
	if err := in.Validate(); err != nil {
		return Session{}, err
	}

	users := s.Store.Users()
	switch _, err := users.GetUserByEmail(ctx, in.Email); {
	case err == nil:
		return Session{}, ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return Session{}, fmt.Errorf("register: lookup email: %w", err)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return Session{}, fmt.Errorf("register: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, s.whichTaken(ctx, in.Email)
		}
		return Session{}, fmt.Errorf("register: create user: %w", err)
	}

	token, err := s.Tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return Session{}, err
	}

	log.Info("user registered", "user_id", user.ID)
	return Session{User: user.Public(), Token: token}, nil
}

// whichTaken decides which unique field a failed insert collided on. The
// email is checked first since it was free a moment ago.
func (s *AuthService) whichTaken(ctx context.Context, email string) error {
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// Login checks the password and issues a token. An unknown email and a wrong
// password both return ErrInvalidCredentials after a bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (Session, error) {
	log := slogx.FromContext(ctx)

	in.normalize()
	if err := in.Validate(); err != nil {
		return Session{}, err
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		cryptox.BurnVerify(in.Password)
		log.Info("login failed", "reason", "unknown_email")
		return Session{}, ErrInvalidCredentials
	case err != nil:
		return Session{}, fmt.Errorf("login: lookup email: %w", err)
	}

	if err := cryptox.VerifyPassword(in.Password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			log.Error("stored password hash unreadable", "user_id", user.ID, "err", err)
		}
		log.Info("login failed", "reason", "bad_password", "user_id", user.ID)
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return Session{}, err
	}

	log.Info("user logged in", "user_id", user.ID)
	return Session{User: user.Public(), Token: token}, nil
}

// Identify loads the current record for a verified token subject. A
// deleted subject is ErrNotFound.
func (s *AuthService) Identify(ctx context.Context, subjectID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, subjectID)
	if err != nil {
		return domain.User{}, mapNotFound("identify", err)
	}
	return u.Public(), nil
}
