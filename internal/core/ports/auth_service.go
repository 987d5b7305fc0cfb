package ports

import (
	"context"

	"github.com/compayre/account-service/internal/core/domain"
)

// AuthService verifies credentials and issues signed tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
