package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticket-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func authProbe(t *testing.T) (http.Handler, *int64) {
	t.Helper()

	var seenUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		seenUserID = userID
		w.WriteHeader(http.StatusOK)
	})

	jwtConfig := utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}
	return Auth(jwtConfig, zap.NewNop())(next), &seenUserID
}

func TestAuth_PassesUserIDFromValidToken(t *testing.T) {
	handler, seenUserID := authProbe(t)

	token, err := utils.GenerateRefreshToken("test-secret", 42, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/tickets/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), *seenUserID)
}

func TestAuth_MissingHeaderIs401(t *testing.T) {
	handler, _ := authProbe(t)

	req := httptest.NewRequest(http.MethodPost, "/tickets/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeaderIs401(t *testing.T) {
	handler, _ := authProbe(t)

	req := httptest.NewRequest(http.MethodPost, "/tickets/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_TamperedTokenIs401(t *testing.T) {
	handler, _ := authProbe(t)

	token, err := utils.GenerateRefreshToken("another-secret", 42, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/tickets/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
