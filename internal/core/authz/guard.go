// Package authz holds the permission predicates gating every account and
// data-access action. Each predicate is a pure function over the caller's
// account: it never mutates state and never returns an error — rejection is
// a normal Decision value that the transport layer turns into a response.
package authz

import (
	"github.com/compayre/account-service/internal/core/domain"
)

// Decision is the outcome of a single authorization check.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// RequireAuthenticated accepts any resolved caller. A nil caller means the
// request carried no usable identity.
func RequireAuthenticated(caller *domain.User) Decision {
	if caller == nil {
		return deny("authentication required")
	}
	return allow()
}

// RequireAdmin accepts only callers with the admin flag set.
func RequireAdmin(caller *domain.User) Decision {
	if caller == nil {
		return deny("authentication required")
	}
	if !caller.IsAdmin {
		return deny("admin access required")
	}
	return allow()
}

// RequireAdvancedOrAdmin accepts callers whose effective role is advanced
// or admin.
func RequireAdvancedOrAdmin(caller *domain.User) Decision {
	if caller == nil {
		return deny("authentication required")
	}
	switch caller.EffectiveRole() {
	case domain.RoleAdmin, domain.RoleAdvanced:
		return allow()
	default:
		return deny("advanced subscription or admin access required")
	}
}

// RequireBasicOrHigher accepts callers on the basic or advanced tier, and
// admins regardless of tier.
func RequireBasicOrHigher(caller *domain.User) Decision {
	if caller == nil {
		return deny("authentication required")
	}
	if caller.IsAdmin {
		return allow()
	}
	switch caller.Subscription {
	case domain.SubscriptionBasic, domain.SubscriptionAdvanced:
		return allow()
	default:
		return deny("basic subscription or higher required")
	}
}

// RequireDataAccess accepts callers entitled to the given data category.
// The authentication check runs before the matrix is ever consulted.
func RequireDataAccess(caller *domain.User, category domain.DataCategory) Decision {
	if caller == nil {
		return deny("authentication required")
	}
	if !caller.IsEntitled(category) {
		return deny("you do not have access to this data")
	}
	return allow()
}

// CanEditAccount implements the self-or-admin rule: a caller may edit its
// own account, and admins may edit anyone.
func CanEditAccount(caller *domain.User, targetID string) Decision {
	if caller == nil {
		return deny("authentication required")
	}
	if caller.IsAdmin || caller.ID == targetID {
		return allow()
	}
	return deny("can only edit own profile")
}
