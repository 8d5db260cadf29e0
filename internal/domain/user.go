package domain

import (
	"context"
	"errors"
	"time"
)

type ContextKey string

const UserContextKey ContextKey = "user"

// SessionContextKey carries the opaque storefront session ID that scopes
// carts, bundles and likes for anonymous visitors.
const SessionContextKey ContextKey = "session"

type User struct {
	ID               string    `json:"id"` // UUID
	TelegramID       int64     `json:"telegramId"`
	TelegramUsername string    `json:"telegramUsername"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Password         string    `json:"-"` // stored encoded, never serialized
	IsAdmin          bool      `json:"isAdmin"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Role maps the admin flag onto the role claim carried in the JWT.
func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "customer"
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	GetAll(ctx context.Context, limit, offset int) ([]*User, int64, error)
	Update(ctx context.Context, user *User) error
}
