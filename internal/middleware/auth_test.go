package middleware

import (
	"Fabrika/internal/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithAuth(t *testing.T) {
	tokens := service.NewTokenService("test-secret", 30)
	token, err := tokens.Mint(42)
	require.NoError(t, err)

	var gotID int64
	var gotOK bool
	handler := WithAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/materials/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, int64(42), gotID)
	})

	t.Run("no header: request still passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/materials/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, gotOK)
	})

	t.Run("garbage token: request still passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/materials/", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, gotOK)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := service.NewTokenService("other-secret", 30)
		foreign, err := other.Mint(7)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/materials/", nil)
		req.Header.Set("Authorization", "Bearer "+foreign)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, gotOK)
	})
}
