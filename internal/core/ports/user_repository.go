package ports

import (
	"context"

	"github.com/compayre/account-service/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
}

// AccountLoader resolves the caller's account for a request, typically
// through a cache in front of the repository.
type AccountLoader interface {
	Load(ctx context.Context, id string) (*domain.User, error)
}

// AccountCache is a short-lived account-by-id cache. Get returns (nil, nil)
// on a miss.
type AccountCache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, id string) error
}
