package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/store"
	"github.com/aussiebroadwan/bookshelf/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id without the password hash.
func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound("get user", err)
	}
	return u.Public(), nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	list, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, mapNotFound("list users", err)
	}
	out := make([]domain.User, 0, len(list))
	for _, u := range list {
		out = append(out, u.Public())
	}
	return out, nil
}

// UpdateProfile changes username and email. The role and password are
// never touched here.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in ProfileInput) (domain.User, error) {
	in.normalize()
	if err := in.Validate(); err != nil {
		return domain.User{}, err
	}

	u, err := s.Store.Users().UpdateProfile(ctx, id, in.Username, in.Email)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.User{}, ErrProfileConflict
	case err != nil:
		return domain.User{}, mapNotFound("update profile", err)
	}

	slogx.FromContext(ctx).Info("user profile updated", "user_id", id)
	return u.Public(), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		return mapNotFound("delete user", err)
	}
	slogx.FromContext(ctx).Info("user deleted", "user_id", id)
	return nil
}

// SetAdminByEmail flips the role of the user registered under email. It is
// the only way the role changes and is reachable from operator tooling
// alone.
func (s *UserService) SetAdminByEmail(ctx context.Context, email string, isAdmin bool) (domain.User, error) {
	users := s.Store.Users()
	u, err := users.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return domain.User{}, mapNotFound("set admin", err)
	}
	if err := users.SetAdmin(ctx, u.ID, isAdmin); err != nil {
		return domain.User{}, mapNotFound("set admin", err)
	}
	u.IsAdmin = isAdmin

	slogx.FromContext(ctx).Info("user role changed", "user_id", u.ID, "is_admin", isAdmin)
	return u.Public(), nil
}
