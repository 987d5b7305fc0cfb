package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/compayre/account-service/internal/core/domain"
	"github.com/compayre/account-service/internal/core/ports"
)

// AccountLoader resolves the caller's account on each request, reading
// through a short-lived cache so authorization always sees fresh-enough
// state without a repository round trip per request.
type AccountLoader struct {
	repo  ports.UserRepository
	cache ports.AccountCache
	log   zerolog.Logger
}

func NewAccountLoader(repo ports.UserRepository, cache ports.AccountCache, log zerolog.Logger) *AccountLoader {
	return &AccountLoader{repo: repo, cache: cache, log: log}
}

func (l *AccountLoader) Load(ctx context.Context, id string) (*domain.User, error) {
	if l.cache != nil {
		cached, err := l.cache.Get(ctx, id)
		if err != nil {
			l.log.Warn().Err(err).Str("user_id", id).Msg("account cache read failed, falling back to repository")
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := l.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, user); err != nil {
			l.log.Warn().Err(err).Str("user_id", id).Msg("account cache write failed")
		}
	}
	return user, nil
}
