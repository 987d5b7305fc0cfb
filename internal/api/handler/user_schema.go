package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Username        string `json:"username"         validate:"required"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	CompanyName     string `json:"company_name"`
	PhoneNumber     string `json:"phone_number"`

	// Accepted for wire compatibility but always discarded: new accounts
	// start free and non-admin no matter what the payload claims.
	SubscriptionType string `json:"subscription_type"`
	IsAdmin          bool   `json:"is_admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	CompanyName      *string `json:"company_name"`
	PhoneNumber      *string `json:"phone_number"`
	SubscriptionType *string `json:"subscription_type"`
	IsAdmin          *bool   `json:"is_admin"`
}

type setSubscriptionRequest struct {
	SubscriptionType string `json:"subscription_type" validate:"required"`
}

type setAdminRequest struct {
	IsAdmin bool `json:"is_admin"`
}

// --- Response types ---

type userResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email,omitempty"`
	FullName         string    `json:"full_name"`
	FirstName        string    `json:"first_name,omitempty"`
	LastName         string    `json:"last_name,omitempty"`
	CompanyName      string    `json:"company_name,omitempty"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	SubscriptionType string    `json:"subscription_type"`
	Role             string    `json:"role"`
	IsAdmin          bool      `json:"is_admin"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

type accessResponse struct {
	Category string `json:"category"`
	Allowed  bool   `json:"allowed"`
}
