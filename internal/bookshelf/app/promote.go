package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/service"
)

// Promote grants or revokes admin on the account registered under email.
// It talks to the store directly; there is no HTTP route for it.
func Promote(ctx context.Context, cfg Config, email string, admin bool, out io.Writer) error {
	if email == "" {
		return errors.New("promote: -email is required")
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	users := &service.UserService{Store: db}
	u, err := users.SetAdminByEmail(ctx, email, admin)
	if errors.Is(err, service.ErrNotFound) {
		return fmt.Errorf("promote: no user registered with email %q", email)
	}
	if err != nil {
		return fmt.Errorf("promote: %w", err)
	}

	role := "user"
	if u.IsAdmin {
		role = "admin"
	}
	_, _ = fmt.Fprintf(out, "%s (%s) is now %s\n", u.Username, u.Email, role)
	return nil
}
