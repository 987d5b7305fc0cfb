package domain

import "testing"

var allCategories = []DataCategory{
	CategoryMarketTrends, CategoryCompanyPay, CategoryDirectorPay,
	CategorySalaryComparison, CategoryTransparencyIndex, CategoryProjections,
}

func TestEffectiveRole_DerivedFromState(t *testing.T) {
	u := &User{Subscription: SubscriptionBasic}
	if got := u.EffectiveRole(); got != RoleBasic {
		t.Fatalf("expected basic, got %s", got)
	}
	// Pure: repeated calls with unchanged state agree.
	if u.EffectiveRole() != RoleBasic {
		t.Fatalf("role changed without state change")
	}

	u.Subscription = SubscriptionAdvanced
	if got := u.EffectiveRole(); got != RoleAdvanced {
		t.Fatalf("expected advanced, got %s", got)
	}

	u.Subscription = SubscriptionFree
	if got := u.EffectiveRole(); got != RoleFree {
		t.Fatalf("expected free, got %s", got)
	}
}

func TestEffectiveRole_AdminOverridesTier(t *testing.T) {
	for _, sub := range []Subscription{SubscriptionFree, SubscriptionBasic, SubscriptionAdvanced} {
		u := &User{Subscription: sub, IsAdmin: true}
		if got := u.EffectiveRole(); got != RoleAdmin {
			t.Fatalf("tier %s: expected admin, got %s", sub, got)
		}
	}
}

func TestAccessMatrix_TierNesting(t *testing.T) {
	free := &User{Subscription: SubscriptionFree}
	basic := &User{Subscription: SubscriptionBasic}
	advanced := &User{Subscription: SubscriptionAdvanced}
	admin := &User{IsAdmin: true}

	for _, cat := range allCategories {
		if free.IsEntitled(cat) && !basic.IsEntitled(cat) {
			t.Fatalf("category %s granted to free but not basic", cat)
		}
		if basic.IsEntitled(cat) && !advanced.IsEntitled(cat) {
			t.Fatalf("category %s granted to basic but not advanced", cat)
		}
		if advanced.IsEntitled(cat) != admin.IsEntitled(cat) {
			t.Fatalf("category %s: advanced and admin grants differ", cat)
		}
	}
}

func TestIsEntitled_PerTier(t *testing.T) {
	free := &User{Subscription: SubscriptionFree}
	if !free.IsEntitled(CategoryMarketTrends) || !free.IsEntitled(CategoryCompanyPay) {
		t.Fatalf("free tier missing its granted categories")
	}
	if free.IsEntitled(CategoryDirectorPay) || free.IsEntitled(CategoryProjections) {
		t.Fatalf("free tier granted paid categories")
	}

	basic := &User{Subscription: SubscriptionBasic}
	if !basic.IsEntitled(CategoryDirectorPay) || !basic.IsEntitled(CategorySalaryComparison) {
		t.Fatalf("basic tier missing its granted categories")
	}
	if basic.IsEntitled(CategoryTransparencyIndex) || basic.IsEntitled(CategoryProjections) {
		t.Fatalf("basic tier granted advanced categories")
	}

	advanced := &User{Subscription: SubscriptionAdvanced}
	for _, cat := range allCategories {
		if !advanced.IsEntitled(cat) {
			t.Fatalf("advanced tier missing category %s", cat)
		}
	}
}

func TestParseSubscription(t *testing.T) {
	if _, err := ParseSubscription("gold"); err != ErrInvalidSubscription {
		t.Fatalf("expected ErrInvalidSubscription, got %v", err)
	}
	sub, err := ParseSubscription("Advanced")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if sub != SubscriptionAdvanced {
		t.Fatalf("expected advanced, got %s", sub)
	}
}

func TestParseDataCategory(t *testing.T) {
	if _, err := ParseDataCategory("horoscopes"); err != ErrInvalidDataCategory {
		t.Fatalf("expected ErrInvalidDataCategory, got %v", err)
	}
	cat, err := ParseDataCategory("director_pay")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cat != CategoryDirectorPay {
		t.Fatalf("unexpected category %s", cat)
	}
}

func TestFullName(t *testing.T) {
	u := &User{Username: "ada", FirstName: "Ada", LastName: "Lovelace"}
	if got := u.FullName(); got != "Ada Lovelace" {
		t.Fatalf("unexpected full name %q", got)
	}
	u = &User{Username: "ada"}
	if got := u.FullName(); got != "ada" {
		t.Fatalf("expected username fallback, got %q", got)
	}
}
