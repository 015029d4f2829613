package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/register", "", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Registration successful", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "customer", user["role"])

	w = env.doJSON(t, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])

	// 会话同时写入 HTTP-only cookie
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	var found bool
	for _, c := range cookies {
		if c.Name == "session" {
			found = true
			assert.True(t, c.HttpOnly)
			assert.NotEmpty(t, c.Value)
		}
	}
	assert.True(t, found, "session cookie not set")
}

func TestRegister_Conflicts(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", "customer")

	w := env.doJSON(t, http.MethodPost, "/api/register", "", map[string]any{
		"username": "alice",
		"email":    "fresh@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Username already exists", decodeBody(t, w)["error"])

	w = env.doJSON(t, http.MethodPost, "/api/register", "", map[string]any{
		"username": "bob",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already exists", decodeBody(t, w)["error"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", "customer")

	w := env.doJSON(t, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}

func TestLogout_RevokesSession(t *testing.T) {
	env := newTestEnv(t)
	_, tokenString := env.createUser(t, "alice", "customer")

	// token 在登出前可用
	w := env.doJSON(t, http.MethodPost, "/api/chat", tokenString, map[string]any{"message": "hi"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/logout", tokenString, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 登出后同一 token 被拒绝
	w = env.doJSON(t, http.MethodPost, "/api/chat", tokenString, map[string]any{"message": "hi again"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoute_CookieFallback(t *testing.T) {
	env := newTestEnv(t)
	_, tokenString := env.createUser(t, "admin", "admin")

	req := env.newCookieRequest(t, http.MethodGet, "/api/users", tokenString)
	w := env.serve(req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoute_TamperedToken(t *testing.T) {
	env := newTestEnv(t)
	_, tokenString := env.createUser(t, "admin", "admin")
	tampered := tokenString[:len(tokenString)-2] + "xx"

	w := env.doJSON(t, http.MethodGet, "/api/users", tampered, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoute_ForbiddenForCustomer(t *testing.T) {
	env := newTestEnv(t)
	_, tokenString := env.createUser(t, "carol", "customer")

	w := env.doJSON(t, http.MethodGet, "/api/users", tokenString, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Admin privileges required", decodeBody(t, w)["error"])
}
