package domain

import (
	"strings"
	"time"
)

// Subscription is the paid tier stored on an account.
type Subscription string

const (
	SubscriptionFree     Subscription = "free"
	SubscriptionBasic    Subscription = "basic"
	SubscriptionAdvanced Subscription = "advanced"
)

// ParseSubscription validates a tier value coming from an external payload.
func ParseSubscription(s string) (Subscription, error) {
	switch sub := Subscription(strings.ToLower(s)); sub {
	case SubscriptionFree, SubscriptionBasic, SubscriptionAdvanced:
		return sub, nil
	default:
		return "", ErrInvalidSubscription
	}
}

// Role is the effective authorization level derived from an account's
// admin flag and subscription tier. It is computed on every check and
// never stored.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAdvanced Role = "advanced"
	RoleBasic    Role = "basic"
	RoleFree     Role = "free"
)

// DataCategory identifies one of the gated content domains of the platform.
type DataCategory string

const (
	CategoryMarketTrends      DataCategory = "market_trends"
	CategoryCompanyPay        DataCategory = "company_pay"
	CategoryDirectorPay       DataCategory = "director_pay"
	CategorySalaryComparison  DataCategory = "salary_comparison"
	CategoryTransparencyIndex DataCategory = "transparency_index"
	CategoryProjections       DataCategory = "projections"
)

// ParseDataCategory validates a category coming from a request path.
func ParseDataCategory(s string) (DataCategory, error) {
	switch cat := DataCategory(strings.ToLower(s)); cat {
	case CategoryMarketTrends, CategoryCompanyPay, CategoryDirectorPay,
		CategorySalaryComparison, CategoryTransparencyIndex, CategoryProjections:
		return cat, nil
	default:
		return "", ErrInvalidDataCategory
	}
}

// accessMatrix maps each role to the data categories it may read.
// Tiers are strictly nested: every category granted to a lower tier must
// also be granted to all higher tiers, and admin matches advanced.
var accessMatrix = map[Role][]DataCategory{
	RoleFree: {
		CategoryMarketTrends, CategoryCompanyPay,
	},
	RoleBasic: {
		CategoryMarketTrends, CategoryCompanyPay,
		CategoryDirectorPay, CategorySalaryComparison,
	},
	RoleAdvanced: {
		CategoryMarketTrends, CategoryCompanyPay,
		CategoryDirectorPay, CategorySalaryComparison,
		CategoryTransparencyIndex, CategoryProjections,
	},
	RoleAdmin: {
		CategoryMarketTrends, CategoryCompanyPay,
		CategoryDirectorPay, CategorySalaryComparison,
		CategoryTransparencyIndex, CategoryProjections,
	},
}

// User models an account holder on the platform.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email,omitempty"`
	PasswordHash string       `json:"-"`
	FirstName    string       `json:"first_name,omitempty"`
	LastName     string       `json:"last_name,omitempty"`
	CompanyName  string       `json:"company_name,omitempty"`
	PhoneNumber  string       `json:"phone_number,omitempty"`
	IsAdmin      bool         `json:"is_admin"`
	Subscription Subscription `json:"subscription_type"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// EffectiveRole derives the authorization level from the account's current
// state. The admin flag overrides the subscription tier.
func (u *User) EffectiveRole() Role {
	if u.IsAdmin {
		return RoleAdmin
	}
	switch u.Subscription {
	case SubscriptionAdvanced:
		return RoleAdvanced
	case SubscriptionBasic:
		return RoleBasic
	default:
		return RoleFree
	}
}

// IsEntitled reports whether the account's effective role grants read
// access to the given data category.
func (u *User) IsEntitled(category DataCategory) bool {
	for _, c := range accessMatrix[u.EffectiveRole()] {
		if c == category {
			return true
		}
	}
	return false
}

// FullName returns the display name, falling back to the username.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
