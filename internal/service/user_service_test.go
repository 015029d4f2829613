package service

import (
	"context"
	"testing"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
	"ai-solution-go/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (UserService, repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	jwtManager := token.NewJWTManager("test-secret", 24)
	return NewUserService(userRepo, newFakeBlacklist(), jwtManager), userRepo
}

func TestRegister_ForcesCustomerRole(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register("bob", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLogin_ByEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	accessToken, user, err := svc.Login("alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.Equal(t, "alice", user.Username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	accessToken, _, err := svc.Login("alice@example.com", "secret123")
	require.NoError(t, err)
	assert.False(t, svc.IsTokenRevoked(ctx, accessToken))

	require.NoError(t, svc.Logout(ctx, accessToken))
	assert.True(t, svc.IsTokenRevoked(ctx, accessToken))
}
