package ports

import (
	"context"

	"github.com/taskdeck/task-api/internal/core/domain"
)

// UserReader is the read-side view of the user store consumed by the
// identity-resolution middleware. Production wiring decorates it with a
// Redis read-through cache.
type UserReader interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserRepository defines persistence operations for user accounts.
// Create assigns the ID and must enforce email uniqueness, returning
// domain.ErrEmailTaken on a duplicate.
type UserRepository interface {
	UserReader
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
