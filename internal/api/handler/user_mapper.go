package handler

import (
	"github.com/compayre/account-service/internal/core/domain"
	"github.com/compayre/account-service/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterInput(req registerRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		CompanyName:     req.CompanyName,
		PhoneNumber:     req.PhoneNumber,
		Subscription:    req.SubscriptionType,
		IsAdmin:         req.IsAdmin,
	}
}

func toUpdateInput(req updateUserRequest) ports.UpdateProfileInput {
	return ports.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CompanyName:  req.CompanyName,
		PhoneNumber:  req.PhoneNumber,
		Subscription: req.SubscriptionType,
		IsAdmin:      req.IsAdmin,
	}
}

// --- Domain → Response ---

// toUserResponse renders an account with its derived role. The role field
// is computed here, at render time, never read from a stored value.
func toUserResponse(u *domain.User) *userResponse {
	return &userResponse{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		FullName:         u.FullName(),
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		CompanyName:      u.CompanyName,
		PhoneNumber:      u.PhoneNumber,
		SubscriptionType: string(u.Subscription),
		Role:             string(u.EffectiveRole()),
		IsAdmin:          u.IsAdmin,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func toUserResponses(users []*domain.User) []*userResponse {
	out := make([]*userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
