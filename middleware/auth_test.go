package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-cart/utils"
)

var testKey = []byte("test-secret")

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	auth := NewAuthMiddleware(testKey)
	handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddlewareRejectsBadScheme(t *testing.T) {
	auth := NewAuthMiddleware(testKey)
	handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	auth := NewAuthMiddleware(testKey)
	handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a valid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddlewareRejectsWrongKey(t *testing.T) {
	token, err := utils.GenerateJWT([]byte("other-secret"), "sub-alice", "alice@example.com")
	require.NoError(t, err)

	auth := NewAuthMiddleware(testKey)
	handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a token signed by another key")
	}))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddlewarePassesClaims(t *testing.T) {
	token, err := utils.GenerateJWT(testKey, "sub-alice", "alice@example.com")
	require.NoError(t, err)

	auth := NewAuthMiddleware(testKey)
	called := false
	handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		claims, ok := CallerClaims(r)
		require.True(t, ok)
		assert.Equal(t, "sub-alice", claims.Subject)
		assert.Equal(t, "alice@example.com", claims.Email)
	}))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}
