package service

import (
	"context"
	"errors"
	"strings"

	"storefront-api/internal/auth"
	"storefront-api/internal/domain"
	"storefront-api/internal/repository"
)

// ErrUserAlreadyExists is returned when creating a user with a taken username.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserService manages user accounts. Every result has the password hash
// scrubbed before leaving the service.
type UserService interface {
	Create(ctx context.Context, user domain.User, password string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users  repository.UserRepository
	hasher auth.Hasher
}

func NewUserService(users repository.UserRepository, hasher auth.Hasher) UserService {
	return &userService{users: users, hasher: hasher}
}

func (s *userService) Create(ctx context.Context, user domain.User, password string) (domain.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return domain.User{}, errors.New("username is required")
	}
	if password == "" {
		return domain.User{}, errors.New("password is required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, err
	}
	user.PasswordHash = hash

	if _, err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return domain.User{}, ErrUserAlreadyExists
		}
		return domain.User{}, err
	}
	return user.Scrubbed(), nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].Scrubbed()
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, user domain.User) error {
	return s.users.Update(ctx, &user)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
