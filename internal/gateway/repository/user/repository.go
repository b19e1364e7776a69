package user

import (
	"context"
	"errors"
)

var (
	ErrEmailTaken = errors.New("user: an account with this email already exists")
	ErrNotFound   = errors.New("user: not found")
)

// User is a registered account. Password holds the bcrypt hash and never
// leaves the server: it is excluded from JSON encoding.
type User struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"-"`
	Department     string `json:"department"`
	Level          string `json:"level"`
	Role           string `json:"role"`
	FollowUpStatus string `json:"followUpStatus"`
}

// Repository stores accounts. Emails are unique case-insensitively; stores
// persist them lowercased.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	GetByID(ctx context.Context, id int64) (User, bool, error)
	// ListStudents returns student accounts, newest first.
	ListStudents(ctx context.Context) ([]User, error)
	SetFollowUpStatus(ctx context.Context, id int64, status string) error
}
