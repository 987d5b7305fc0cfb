package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/compayre/account-service/internal/core/domain"
	"github.com/compayre/account-service/internal/core/ports"
)

// AuthService implements login: credential verification against the
// repository followed by token issuance.
type AuthService struct {
	repo   ports.UserRepository
	issuer *TokenIssuer
}

func NewAuthService(repo ports.UserRepository, issuer *TokenIssuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
