package ports

import (
	"context"

	"github.com/taskdeck/task-api/internal/core/domain"
)

// AuthService defines the registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, email, fullName, password string) (*domain.User, error)
	// Login returns a signed bearer token. An unknown email and a wrong
	// password are indistinguishable: both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
}
