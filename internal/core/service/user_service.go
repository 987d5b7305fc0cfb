package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/compayre/account-service/internal/core/authz"
	"github.com/compayre/account-service/internal/core/domain"
	"github.com/compayre/account-service/internal/core/ports"
)

const minPasswordLength = 8

// UserService implements account lifecycle and the privileged mutations.
type UserService struct {
	repo       ports.UserRepository
	cache      ports.AccountCache
	dispatcher ports.NotificationDispatcher
}

func NewUserService(repo ports.UserRepository, cache ports.AccountCache, dispatcher ports.NotificationDispatcher) *UserService {
	return &UserService{repo: repo, cache: cache, dispatcher: dispatcher}
}

// Register creates a new account. Whatever subscription or admin values the
// payload carries are discarded: every account starts free and non-admin.
// Self-assignment of a paid tier through registration is not a validation
// concern but a hard sanitation step.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" {
		return nil, domain.NewValidationError("username", "username is required")
	}
	if in.Password != in.PasswordConfirm {
		return nil, domain.ErrPasswordMismatch
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CompanyName:  in.CompanyName,
		PhoneNumber:  in.PhoneNumber,
		IsAdmin:      false,
		Subscription: domain.SubscriptionFree,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.notify(ports.NotificationWelcome, created)
	return created, nil
}

// GetByID returns an account, scoped to the caller: non-admins can only
// retrieve their own record. The scope check runs before the repository is
// touched, so out-of-scope ids are indistinguishable from absent ones.
func (s *UserService) GetByID(ctx context.Context, caller *domain.User, id string) (*domain.User, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !caller.IsAdmin && caller.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// List returns all accounts, newest first. Admin only.
func (s *UserService) List(ctx context.Context, caller *domain.User) ([]*domain.User, error) {
	if d := authz.RequireAdmin(caller); !d.Allowed {
		return nil, domain.Forbid(d.Reason)
	}
	return s.repo.List(ctx)
}

// UpdateProfile applies a partial profile mutation under the self-or-admin
// rule. For non-admin callers the subscription and admin fields are dropped
// from the payload without error, so a user editing their own profile can
// never escalate their tier through this path.
func (s *UserService) UpdateProfile(ctx context.Context, caller *domain.User, targetID string, in ports.UpdateProfileInput) (*domain.User, error) {
	if d := authz.CanEditAccount(caller, targetID); !d.Allowed {
		if caller == nil {
			return nil, domain.ErrUnauthenticated
		}
		return nil, domain.Forbid(d.Reason)
	}

	if !caller.IsAdmin {
		in.Subscription = nil
		in.IsAdmin = nil
	}

	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.CompanyName != nil {
		user.CompanyName = *in.CompanyName
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	if in.Subscription != nil {
		sub, err := domain.ParseSubscription(*in.Subscription)
		if err != nil {
			return nil, err
		}
		user.Subscription = sub
	}
	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.ID)
	return updated, nil
}

// SetSubscription is the admin action changing a user's tier.
func (s *UserService) SetSubscription(ctx context.Context, caller *domain.User, targetID, subscription string) (*domain.User, error) {
	if d := authz.RequireAdmin(caller); !d.Allowed {
		return nil, domain.Forbid(d.Reason)
	}

	sub, err := domain.ParseSubscription(subscription)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.Subscription = sub
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.ID)
	s.notify(ports.NotificationSubscriptionChanged, updated)
	return updated, nil
}

// SetAdminFlag is the admin action promoting or demoting a user. The flag
// is applied unconditionally; an admin can demote themselves, which can
// leave the system without any admin.
func (s *UserService) SetAdminFlag(ctx context.Context, caller *domain.User, targetID string, isAdmin bool) (*domain.User, error) {
	if d := authz.RequireAdmin(caller); !d.Allowed {
		return nil, domain.Forbid(d.Reason)
	}

	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.IsAdmin = isAdmin
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.ID)
	s.notify(ports.NotificationAdminFlagChanged, updated)
	return updated, nil
}

// Delete removes an account. Admin only.
func (s *UserService) Delete(ctx context.Context, caller *domain.User, targetID string) error {
	if d := authz.RequireAdmin(caller); !d.Allowed {
		return domain.Forbid(d.Reason)
	}
	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}
	s.invalidate(ctx, targetID)
	return nil
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, id)
	}
}

func (s *UserService) notify(typ string, user *domain.User) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Enqueue(ports.AccountNotification{
		Type:         typ,
		UserID:       user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Subscription: string(user.Subscription),
		IsAdmin:      user.IsAdmin,
	})
}
