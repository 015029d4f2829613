package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	manager := NewJWTManager("test-secret", 24)

	tokenString, err := manager.GenerateToken(42, "alice", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := manager.VerifyToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)

	// 过期时间应当落在配置的 24 小时窗口附近
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, 24*time.Hour)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", 24)
	other := NewJWTManager("another-secret", 24)

	tokenString, err := manager.GenerateToken(1, "alice", "customer")
	require.NoError(t, err)

	_, err = other.VerifyToken(tokenString)
	assert.Error(t, err)
}

func TestVerifyToken_Tampered(t *testing.T) {
	manager := NewJWTManager("test-secret", 24)

	tokenString, err := manager.GenerateToken(1, "alice", "customer")
	require.NoError(t, err)

	tampered := tokenString[:len(tokenString)-2] + "xx"
	_, err = manager.VerifyToken(tampered)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	// 有效期为 0 小时的 token 立即过期
	manager := NewJWTManager("test-secret", 0)

	tokenString, err := manager.GenerateToken(1, "alice", "customer")
	require.NoError(t, err)

	_, err = manager.VerifyToken(tokenString)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	manager := NewJWTManager("test-secret", 24)
	_, err := manager.VerifyToken("not-a-jwt")
	assert.Error(t, err)
}
