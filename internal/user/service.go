package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"quotegarden/internal/auth"
)

type Service struct {
	repo      Repository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewService(repo Repository, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *Service) Register(ctx context.Context, email, displayName, password string) (User, error) {
	if err := auth.ValidatePasswordStrength(password); err != nil {
		return User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, err
	}

	u := User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login verifies credentials and returns the user plus a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrBadCredential
		}
		return User{}, "", err
	}

	if !auth.VerifyPassword(u.PasswordHash, password) {
		return User{}, "", ErrBadCredential
	}

	token, _, err := auth.GenerateToken(s.jwtSecret, u.ID, s.tokenTTL)
	if err != nil {
		return User{}, "", err
	}
	return u, token, nil
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}
