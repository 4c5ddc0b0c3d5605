package shelfsdk

import (
	"encoding/json"
	"time"
)

// Response is the envelope every endpoint answers with.
type Response[T any] struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    T                 `json:"data,omitempty"`
	Token   string            `json:"token,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Users
// ============================================================================

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest changes a profile. Password exists only so the server
// can tell that one was sent and refuse it.
type UpdateUserRequest struct {
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Password json.RawMessage `json:"password,omitempty" swaggertype:"string"`
}

// ============================================================================
// Catalog
// ============================================================================

type Author struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Nationality string    `json:"nationality"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthorRef is the author summary embedded in a book.
type AuthorRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type AuthorRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Nationality string `json:"nationality"`
	Image       string `json:"image,omitempty"`
}

type Book struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Author      *AuthorRef `json:"author"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Cover       string     `json:"cover"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BookRequest names its author by id.
type BookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Cover       string  `json:"cover"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
