package ports

import (
	"context"

	"github.com/compayre/account-service/internal/core/domain"
)

// RegisterInput carries the raw registration payload. Subscription and
// IsAdmin may be present in the payload but are discarded during
// registration: new accounts always start free and non-admin.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
	CompanyName     string
	PhoneNumber     string
	Subscription    string
	IsAdmin         bool
}

// UpdateProfileInput is a partial profile mutation. Nil fields are left
// untouched. Subscription and IsAdmin are honoured only for admin callers;
// for everyone else they are silently dropped.
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	CompanyName  *string
	PhoneNumber  *string
	Subscription *string
	IsAdmin      *bool
}

// UserService manages account lifecycle and the privileged mutations.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	GetByID(ctx context.Context, caller *domain.User, id string) (*domain.User, error)
	List(ctx context.Context, caller *domain.User) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, caller *domain.User, targetID string, in UpdateProfileInput) (*domain.User, error)
	SetSubscription(ctx context.Context, caller *domain.User, targetID, subscription string) (*domain.User, error)
	SetAdminFlag(ctx context.Context, caller *domain.User, targetID string, isAdmin bool) (*domain.User, error)
	Delete(ctx context.Context, caller *domain.User, targetID string) error
}
