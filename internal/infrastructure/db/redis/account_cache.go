package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/compayre/account-service/internal/core/domain"
)

const defaultCacheTTL = 2 * time.Minute

// AccountCache is a short-TTL account-by-id cache backed by Redis.
// Key format: account:<user_id>
//
// The password hash is deliberately not cached: the cached account is only
// consumed by authorization checks, which never read it.
type AccountCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAccountCache creates an AccountCache wrapping the given Redis client.
// If ttl <= 0, defaultCacheTTL is used.
func NewAccountCache(client *redis.Client, ttl time.Duration) *AccountCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &AccountCache{client: client, ttl: ttl}
}

type cachedAccount struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	CompanyName  string `json:"company_name,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	IsAdmin      bool   `json:"is_admin"`
	Subscription string `json:"subscription_type"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// Get returns the cached account, or (nil, nil) on a miss.
func (c *AccountCache) Get(ctx context.Context, id string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("account cache get: %w", err)
	}

	var ca cachedAccount
	if err := json.Unmarshal(raw, &ca); err != nil {
		return nil, fmt.Errorf("account cache decode: %w", err)
	}

	return &domain.User{
		ID:           ca.ID,
		Username:     ca.Username,
		Email:        ca.Email,
		FirstName:    ca.FirstName,
		LastName:     ca.LastName,
		CompanyName:  ca.CompanyName,
		PhoneNumber:  ca.PhoneNumber,
		IsAdmin:      ca.IsAdmin,
		Subscription: domain.Subscription(ca.Subscription),
		CreatedAt:    time.Unix(ca.CreatedAt, 0).UTC(),
		UpdatedAt:    time.Unix(ca.UpdatedAt, 0).UTC(),
	}, nil
}

// Set stores the account for the configured TTL.
func (c *AccountCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(cachedAccount{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		CompanyName:  user.CompanyName,
		PhoneNumber:  user.PhoneNumber,
		IsAdmin:      user.IsAdmin,
		Subscription: string(user.Subscription),
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("account cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), raw, c.ttl).Err()
}

// Invalidate drops the cached account after a mutation so the next request
// observes the fresh state.
func (c *AccountCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *AccountCache) key(id string) string {
	return fmt.Sprintf("account:%s", id)
}
