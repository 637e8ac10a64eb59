package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-api/internal/auth"
	"storefront-api/internal/domain"
	"storefront-api/internal/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so login responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrPasswordMismatch indicates the current password supplied for a
	// password change was wrong. Distinct from ErrInvalidCredentials: the
	// caller already holds a valid session.
	ErrPasswordMismatch = errors.New("current password does not match")
	// ErrUserNotFound indicates the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// AuthService issues, renews and validates session tokens and manages the
// password lifecycle. Tokens are stateless; no session table exists.
type AuthService interface {
	Login(ctx context.Context, username, password string) (domain.User, string, error)
	Renew(tokenString string) (domain.User, string, error)
	ParseToken(tokenString string) (auth.Claims, error)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
}

type authService struct {
	users    repository.UserRepository
	codec    auth.Codec
	hasher   auth.Hasher
	loginTTL time.Duration
	renewTTL time.Duration
}

func NewAuthService(users repository.UserRepository, codec auth.Codec, hasher auth.Hasher, loginTTL, renewTTL time.Duration) AuthService {
	return &authService{
		users:    users,
		codec:    codec,
		hasher:   hasher,
		loginTTL: loginTTL,
		renewTTL: renewTTL,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, "", ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("look up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, claims, err := s.codec.Issue(*user, s.loginTTL)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return claims.User, token, nil
}

// Renew validates an existing token and reissues it with a fresh, longer
// expiry. The embedded snapshot is carried over unchanged, so a renewed
// session keeps whatever profile it was issued with.
func (s *authService) Renew(tokenString string) (domain.User, string, error) {
	claims, err := s.codec.Parse(tokenString)
	if err != nil {
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, renewed, err := s.codec.Issue(claims.User, s.renewTTL)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("reissue token: %w", err)
	}
	return renewed.User, token, nil
}

func (s *authService) ParseToken(tokenString string) (auth.Claims, error) {
	return s.codec.Parse(tokenString)
}

func (s *authService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("look up user: %w", err)
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash, time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("persist new password: %w", err)
	}
	return nil
}
