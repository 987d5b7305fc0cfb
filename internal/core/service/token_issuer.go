package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/compayre/account-service/internal/core/domain"
)

// TokenIssuer builds signed, time-bounded tokens embedding a snapshot of
// the account's role and subscription at issuance time. It performs no
// authorization decision of its own: credential verification must already
// have succeeded by the time Issue is called.
type TokenIssuer struct {
	secret   string
	tokenTTL time.Duration
}

func NewTokenIssuer(secret string, tokenTTL time.Duration) *TokenIssuer {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenIssuer{secret: secret, tokenTTL: tokenTTL}
}

// Issue signs a token for the given account. The embedded role and
// subscription are read from the account at this instant and do not change
// if the account is mutated later; staleness is bounded by the token TTL.
func (i *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":               user.ID,
		"username":          user.Username,
		"email":             user.Email,
		"role":              string(user.EffectiveRole()),
		"subscription_type": string(user.Subscription),
		"iat":               now.Unix(),
		"exp":               now.Add(i.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.secret))
}
