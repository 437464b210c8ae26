package users

import (
	"context"
)

// Repository stores registered users. Emails are matched case-insensitively.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
