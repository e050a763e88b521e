package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quotegarden/internal/auth"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, "test-secret", time.Hour)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Email == "hana@example.com" && u.DisplayName == "하나" && u.PasswordHash != ""
	})).Return(nil)

	_, err := newTestService(repo).Register(context.Background(), "  Hana@Example.com ", " 하나 ", "Str0ng!pass")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	repo := new(mockUserRepo)

	_, err := newTestService(repo).Register(context.Background(), "hana@example.com", "하나", "short")
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(ErrEmailTaken)

	_, err := newTestService(repo).Register(context.Background(), "hana@example.com", "하나", "Str0ng!pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_OK(t *testing.T) {
	hash, err := auth.HashPassword("Str0ng!pass")
	require.NoError(t, err)

	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "hana@example.com").Return(User{
		ID:           "u1",
		Email:        "hana@example.com",
		PasswordHash: hash,
	}, nil)

	u, token, err := newTestService(repo).Login(context.Background(), "Hana@Example.com", "Str0ng!pass")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.NotEmpty(t, token)

	claims, err := auth.ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Sub)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("Str0ng!pass")
	require.NoError(t, err)

	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "hana@example.com").Return(User{
		ID:           "u1",
		PasswordHash: hash,
	}, nil)

	_, _, err = newTestService(repo).Login(context.Background(), "hana@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrBadCredential)
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(User{}, ErrNotFound)

	_, _, err := newTestService(repo).Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrBadCredential)
}
