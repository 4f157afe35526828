package repository

import (
	"context"

	authdomain "lovemypet-backend/internal/auth/domain"
)

// UserRepository is the persistence contract for user records. Find methods
// return (nil, nil) when no record matches.
type UserRepository interface {
	// Create inserts a new user. It returns domain.ErrDuplicateEmail when the
	// store rejects the insert on the unique email index; that index, not the
	// caller's pre-check, is the source of truth for uniqueness.
	Create(ctx context.Context, user *authdomain.User) error
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
	UpdateByID(ctx context.Context, id string, patch *authdomain.UserUpdate) (*authdomain.User, error)
	DeleteByID(ctx context.Context, id string) error
}
