package ports

import (
	"context"

	"github.com/projclock/projclock/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the given token until its natural expiry.
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID int64) (*domain.User, error)
}
