package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"storefront-api/internal/auth"
	"storefront-api/internal/domain"
	"storefront-api/internal/repository"
)

// memUserRepo is an in-memory repository.UserRepository for service tests.
type memUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*domain.User{}, nextID: 1}
}

func (m *memUserRepo) Init(ctx context.Context) error { return nil }

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	for _, u := range m.users {
		if u.Username == user.Username {
			return 0, repository.ErrAlreadyExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	m.users[user.ID] = &clone
	return user.ID, nil
}

func (m *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *memUserRepo) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserRepo) Update(ctx context.Context, user *domain.User) error {
	stored, ok := m.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	hash := stored.PasswordHash
	clone := *user
	clone.PasswordHash = hash
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string, updatedAt time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = updatedAt
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func newTestAuthService(t *testing.T, repo repository.UserRepository) AuthService {
	t.Helper()
	return NewAuthService(
		repo,
		auth.NewCodec("test-secret"),
		auth.NewHasher(bcrypt.MinCost),
		time.Hour,
		2*time.Hour,
	)
}

func seedUser(t *testing.T, repo *memUserRepo, username, password string) *domain.User {
	t.Helper()
	hash, err := auth.NewHasher(bcrypt.MinCost).Hash(password)
	require.NoError(t, err)
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     "Sam Seller",
		Address:      "1 Shop Rd",
		PhoneNumber:  "555-0202",
		Role:         "admin",
		Photo:        "default_user.png",
	}
	_, err = repo.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}

func TestAuthService_LoginSuccess(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "sam", "oldpw")
	svc := newTestAuthService(t, repo)

	user, token, err := svc.Login(context.Background(), "sam", "oldpw")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "sam", user.Username)
	assert.Empty(t, user.PasswordHash)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sam", claims.User.Username)
	assert.Empty(t, claims.User.PasswordHash)
}

func TestAuthService_LoginFailureIsUniform(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "sam", "oldpw")
	svc := newTestAuthService(t, repo)

	_, _, wrongPassErr := svc.Login(context.Background(), "sam", "wrong")
	_, _, unknownUserErr := svc.Login(context.Background(), "nobody", "whatever")

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUserErr, ErrInvalidCredentials)
	// Identical error value, so responses cannot reveal whether the
	// username exists.
	assert.Equal(t, wrongPassErr, unknownUserErr)
}

func TestAuthService_LoginRejectsEmptyInput(t *testing.T) {
	svc := newTestAuthService(t, newMemUserRepo())

	_, _, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RenewExtendsExpiryOnly(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "sam", "oldpw")
	svc := newTestAuthService(t, repo)

	_, token, err := svc.Login(context.Background(), "sam", "oldpw")
	require.NoError(t, err)
	original, err := svc.ParseToken(token)
	require.NoError(t, err)

	user, renewedToken, err := svc.Renew(token)
	require.NoError(t, err)
	require.NotEmpty(t, renewedToken)

	renewed, err := svc.ParseToken(renewedToken)
	require.NoError(t, err)

	assert.Equal(t, original.User, renewed.User, "snapshot must be carried over unchanged")
	assert.Equal(t, original.User.Username, user.Username)
	assert.Empty(t, user.PasswordHash)
	assert.True(t, renewed.ExpiresAt.After(original.ExpiresAt.Time),
		"renewed expiry must strictly exceed the old one")
}

func TestAuthService_RenewRejectsInvalidToken(t *testing.T) {
	svc := newTestAuthService(t, newMemUserRepo())

	_, _, err := svc.Renew("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newMemUserRepo()
	seeded := seedUser(t, repo, "sam", "oldpw")
	svc := newTestAuthService(t, repo)

	require.NoError(t, svc.ChangePassword(context.Background(), "sam", "oldpw", "newpw"))

	// New password works, old one no longer does.
	_, _, err := svc.Login(context.Background(), "sam", "newpw")
	require.NoError(t, err)
	_, _, err = svc.Login(context.Background(), "sam", "oldpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	stored, err := repo.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.NotEqual(t, seeded.PasswordHash, stored.PasswordHash)
	assert.True(t, stored.UpdatedAt.After(seeded.UpdatedAt) || stored.UpdatedAt.Equal(seeded.UpdatedAt))
}

func TestAuthService_ChangePasswordWrongCurrent(t *testing.T) {
	repo := newMemUserRepo()
	seeded := seedUser(t, repo, "sam", "oldpw")
	svc := newTestAuthService(t, repo)

	err := svc.ChangePassword(context.Background(), "sam", "wrong", "newpw")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	// Stored hash untouched; old password still logs in.
	stored, err2 := repo.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err2)
	assert.Equal(t, seeded.PasswordHash, stored.PasswordHash)
	_, _, err = svc.Login(context.Background(), "sam", "oldpw")
	require.NoError(t, err)
}

func TestAuthService_ChangePasswordUnknownUser(t *testing.T) {
	svc := newTestAuthService(t, newMemUserRepo())

	err := svc.ChangePassword(context.Background(), "ghost", "x", "y")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
