package service

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/domain"
	"github.com/aussiebroadwan/bookshelf/pkg/cryptox"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	letterPattern   = regexp.MustCompile(`[A-Za-z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
	imagePattern    = regexp.MustCompile(`(?i)^https?://\S+\.(png|jpe?g|gif|svg)$`)
)

const (
	minPasswordLen = 8
	maxEmailLen    = 254
)

// MsgPasswordNotUpdatable is returned when a profile update carries a
// password.
const MsgPasswordNotUpdatable = "Password cannot be updated using this endpoint"

func checkLength(v *ValidationError, field, value string, lo, hi int) {
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0:
		v.Add(field, fmt.Sprintf("%s is required", field))
	case n < lo:
		v.Add(field, fmt.Sprintf("%s must be at least %d characters long", field, lo))
	case n > hi:
		v.Add(field, fmt.Sprintf("%s must be at most %d characters long", field, hi))
	}
}

func checkUsername(v *ValidationError, username string) {
	checkLength(v, "username", username, 3, 30)
	if username != "" && !usernamePattern.MatchString(username) {
		v.Add("username", "username may only contain letters, numbers, underscores and hyphens")
	}
}

func checkEmail(v *ValidationError, email string) {
	switch {
	case email == "":
		v.Add("email", "email is required")
	case len(email) > maxEmailLen || !emailPattern.MatchString(email):
		v.Add("email", "email must be a valid email")
	}
}

func checkPassword(v *ValidationError, password string) {
	switch {
	case password == "":
		v.Add("password", "password is required")
	case utf8.RuneCountInString(password) < minPasswordLen:
		v.Add("password", fmt.Sprintf("password must be at least %d characters long", minPasswordLen))
	case len(password) > cryptox.MaxPasswordBytes:
		v.Add("password", fmt.Sprintf("password must be at most %d bytes long", cryptox.MaxPasswordBytes))
	case !letterPattern.MatchString(password) || !digitPattern.MatchString(password):
		v.Add("password", "password must contain at least one letter and one number")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterInput is a signup request. IsAdmin is not part of it on purpose.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (in *RegisterInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
}

func (in RegisterInput) Validate() error {
	var v ValidationError
	checkUsername(&v, in.Username)
	checkEmail(&v, in.Email)
	checkPassword(&v, in.Password)
	return v.Err()
}

type LoginInput struct {
	Email    string
	Password string
}

func (in *LoginInput) normalize() {
	in.Email = normalizeEmail(in.Email)
}

// Validate only checks shape. Strength rules are not applied here so that
// a weak-looking password gets the same 401 as any other wrong one.
func (in LoginInput) Validate() error {
	var v ValidationError
	checkEmail(&v, in.Email)
	if in.Password == "" {
		v.Add("password", "password is required")
	}
	return v.Err()
}

// ProfileInput is a self-service profile update. HasPassword is set when the
// request body carried a password field at all.
type ProfileInput struct {
	Username    string
	Email       string
	HasPassword bool
}

func (in *ProfileInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
}

func (in ProfileInput) Validate() error {
	if in.HasPassword {
		return invalid("password", MsgPasswordNotUpdatable)
	}
	var v ValidationError
	checkUsername(&v, in.Username)
	checkEmail(&v, in.Email)
	return v.Err()
}

type AuthorInput struct {
	FirstName   string
	LastName    string
	Nationality string
	Image       string
}

func (in *AuthorInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Nationality = strings.TrimSpace(in.Nationality)
	in.Image = strings.TrimSpace(in.Image)
	if in.Image == "" {
		in.Image = domain.DefaultAuthorImage
	}
}

func (in AuthorInput) Validate() error {
	var v ValidationError
	checkLength(&v, "firstName", in.FirstName, 2, 50)
	checkLength(&v, "lastName", in.LastName, 2, 50)
	checkLength(&v, "nationality", in.Nationality, 3, 50)
	if in.Image != domain.DefaultAuthorImage && !imagePattern.MatchString(in.Image) {
		v.Add("image", "image must be a URL to a png, jpg, jpeg, gif or svg file")
	}
	return v.Err()
}

type BookInput struct {
	Title       string
	AuthorID    string
	Description string
	Price       float64
	Cover       string
}

func (in *BookInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.AuthorID = strings.TrimSpace(in.AuthorID)
	in.Description = strings.TrimSpace(in.Description)
	in.Cover = strings.ToLower(strings.TrimSpace(in.Cover))
}

func (in BookInput) Validate() error {
	var v ValidationError
	checkLength(&v, "title", in.Title, 3, 100)
	if in.AuthorID == "" {
		v.Add("author", "author is required")
	}
	checkLength(&v, "description", in.Description, 10, 500)
	switch {
	case math.IsNaN(in.Price) || math.IsInf(in.Price, 0) || in.Price <= 0:
		v.Add("price", "price must be greater than 0")
	case math.Abs(in.Price*100-math.Round(in.Price*100)) > 1e-6:
		v.Add("price", "price must have at most two decimal places")
	}
	if !domain.Cover(in.Cover).Valid() {
		v.Add("cover", `cover must be one of "soft cover" or "hard cover"`)
	}
	return v.Err()
}
