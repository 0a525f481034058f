package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/token"
)

const testSecret = "auth-test-secret"

func newProtectedRouter(t *testing.T) *ginext.Engine {
	t.Helper()
	r := ginext.New("test")

	r.GET("/me", Auth(testSecret), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{
			"user_id": c.GetString(CtxUserID),
			"role":    c.GetString(CtxUserRole),
		})
	})
	r.GET("/admin", Auth(testSecret), RequireAdmin(), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"ok": true})
	})

	return r
}

func get(r *ginext.Engine, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader(t *testing.T) {
	r := newProtectedRouter(t)

	w := get(r, "/me", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_NotBearer(t *testing.T) {
	r := newProtectedRouter(t)

	w := get(r, "/me", "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	r := newProtectedRouter(t)

	w := get(r, "/me", "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	r := newProtectedRouter(t)

	raw, err := token.New(&domain.User{ID: "u1", Role: domain.RoleUser}, testSecret, -time.Minute)
	require.NoError(t, err)

	w := get(r, "/me", "Bearer "+raw)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	r := newProtectedRouter(t)

	raw, err := token.New(&domain.User{ID: "u1", Role: domain.RoleUser}, testSecret, time.Hour)
	require.NoError(t, err)

	w := get(r, "/me", "Bearer "+raw)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestRequireAdmin_UserDenied(t *testing.T) {
	r := newProtectedRouter(t)

	raw, err := token.New(&domain.User{ID: "u1", Role: domain.RoleUser}, testSecret, time.Hour)
	require.NoError(t, err)

	w := get(r, "/admin", "Bearer "+raw)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	r := newProtectedRouter(t)

	raw, err := token.New(&domain.User{ID: "a1", Role: domain.RoleAdmin}, testSecret, time.Hour)
	require.NoError(t, err)

	w := get(r, "/admin", "Bearer "+raw)

	assert.Equal(t, http.StatusOK, w.Code)
}
