package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/harukimori/study-log-api/internal/auth"
	"github.com/harukimori/study-log-api/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "new@example.com",
		"username": "newuser",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		User dto.UserDTO `json:"user"`
	}
	decodeBody(t, w, &response)
	require.Equal(t, "new@example.com", response.User.Email)
	require.Equal(t, "newuser", response.User.Username)
	require.NotZero(t, response.User.ID)
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	env := setupAPITestEnv(t)
	env.registerUser(t, "taken@example.com")

	w := env.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "taken@example.com",
		"username": "other",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusConflict, w.Code)

	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, w, &response)
	require.False(t, response.Success)
	require.Equal(t, "this email address is already registered", response.Message)
}

func TestAuthHandler_RegisterMissingFields(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "new@example.com",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAPITestEnv(t)
	user, _ := env.registerUser(t, "login@example.com")

	w := env.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Token string      `json:"token"`
		User  dto.UserDTO `json:"user"`
	}
	decodeBody(t, w, &response)
	require.NotEmpty(t, response.Token)
	require.Equal(t, user.ID, response.User.ID)

	// the issued token must be accepted by protected endpoints
	me := env.doJSON(t, http.MethodGet, "/auth/me", response.Token, nil)
	require.Equal(t, http.StatusOK, me.Code)
}

// Wrong password and unknown email must be indistinguishable.
func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	env := setupAPITestEnv(t)
	env.registerUser(t, "login@example.com")

	wrongPassword := env.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "nope",
	})
	unknownEmail := env.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAPITestEnv(t)
	user, token := env.registerUser(t, "me@example.com")

	w := env.doJSON(t, http.MethodGet, "/auth/me", token, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		User dto.UserDTO `json:"user"`
	}
	decodeBody(t, w, &response)
	require.Equal(t, user.ID, response.User.ID)
	require.Equal(t, "me@example.com", response.User.Email)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/auth/me", "", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var response struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &response)
	require.Equal(t, "Authentication required. No token provided.", response.Message)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	env := setupAPITestEnv(t)
	user, _ := env.registerUser(t, "expired@example.com")

	expired := auth.NewManager([]byte("test-secret"), -time.Minute)
	token, err := expired.Generate(user.ID)
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodGet, "/auth/me", token, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var response struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &response)
	require.Equal(t, "Token has expired", response.Message)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	env := setupAPITestEnv(t)
	_, token := env.registerUser(t, "tampered@example.com")

	w := env.doJSON(t, http.MethodGet, "/auth/me", token+"x", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var response struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &response)
	require.Equal(t, "Invalid token", response.Message)
}
