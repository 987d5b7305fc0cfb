package authz

import (
	"testing"

	"github.com/compayre/account-service/internal/core/domain"
)

func TestRequireAdmin(t *testing.T) {
	if d := RequireAdmin(nil); d.Allowed {
		t.Fatalf("nil caller accepted")
	}
	if d := RequireAdmin(&domain.User{Subscription: domain.SubscriptionAdvanced}); d.Allowed {
		t.Fatalf("advanced subscriber accepted as admin")
	}
	if d := RequireAdmin(&domain.User{IsAdmin: true}); !d.Allowed {
		t.Fatalf("admin rejected: %s", d.Reason)
	}
}

func TestRequireAdvancedOrAdmin(t *testing.T) {
	if d := RequireAdvancedOrAdmin(nil); d.Allowed {
		t.Fatalf("nil caller accepted")
	}
	if d := RequireAdvancedOrAdmin(&domain.User{Subscription: domain.SubscriptionBasic}); d.Allowed {
		t.Fatalf("basic subscriber accepted")
	}
	if d := RequireAdvancedOrAdmin(&domain.User{Subscription: domain.SubscriptionAdvanced}); !d.Allowed {
		t.Fatalf("advanced subscriber rejected: %s", d.Reason)
	}
	if d := RequireAdvancedOrAdmin(&domain.User{IsAdmin: true}); !d.Allowed {
		t.Fatalf("admin rejected: %s", d.Reason)
	}
}

func TestRequireBasicOrHigher(t *testing.T) {
	if d := RequireBasicOrHigher(nil); d.Allowed {
		t.Fatalf("nil caller accepted")
	}
	if d := RequireBasicOrHigher(&domain.User{Subscription: domain.SubscriptionFree}); d.Allowed {
		t.Fatalf("free subscriber accepted")
	}
	if d := RequireBasicOrHigher(&domain.User{Subscription: domain.SubscriptionBasic}); !d.Allowed {
		t.Fatalf("basic subscriber rejected: %s", d.Reason)
	}
	// Admin on the free tier still passes.
	if d := RequireBasicOrHigher(&domain.User{Subscription: domain.SubscriptionFree, IsAdmin: true}); !d.Allowed {
		t.Fatalf("admin on free tier rejected: %s", d.Reason)
	}
}

func TestRequireDataAccess_UnauthenticatedFirst(t *testing.T) {
	d := RequireDataAccess(nil, domain.CategoryMarketTrends)
	if d.Allowed {
		t.Fatalf("nil caller accepted")
	}
	if d.Reason != "authentication required" {
		t.Fatalf("expected authentication rejection, got %q", d.Reason)
	}
}

func TestRequireDataAccess_Matrix(t *testing.T) {
	free := &domain.User{Subscription: domain.SubscriptionFree}
	if d := RequireDataAccess(free, domain.CategoryCompanyPay); !d.Allowed {
		t.Fatalf("free caller rejected from company pay: %s", d.Reason)
	}
	if d := RequireDataAccess(free, domain.CategoryProjections); d.Allowed {
		t.Fatalf("free caller granted projections")
	}

	admin := &domain.User{IsAdmin: true}
	if d := RequireDataAccess(admin, domain.CategoryProjections); !d.Allowed {
		t.Fatalf("admin rejected from projections: %s", d.Reason)
	}
}

func TestCanEditAccount(t *testing.T) {
	if d := CanEditAccount(nil, "u1"); d.Allowed {
		t.Fatalf("nil caller accepted")
	}

	self := &domain.User{ID: "u1"}
	if d := CanEditAccount(self, "u1"); !d.Allowed {
		t.Fatalf("self edit rejected: %s", d.Reason)
	}

	d := CanEditAccount(self, "u2")
	if d.Allowed {
		t.Fatalf("cross-account edit by non-admin accepted")
	}
	if d.Reason != "can only edit own profile" {
		t.Fatalf("unexpected reason %q", d.Reason)
	}

	admin := &domain.User{ID: "u1", IsAdmin: true}
	if d := CanEditAccount(admin, "u2"); !d.Allowed {
		t.Fatalf("admin cross-account edit rejected: %s", d.Reason)
	}
}
