package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sittha/dorm-booking/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func next(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func contextWithToken(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/me", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAuth_ValidToken(t *testing.T) {
	token, err := auth.CreateToken(testSecret, 7, "student", "Somchai", time.Hour)
	require.NoError(t, err)

	c, rec := contextWithToken(token)
	err = RequireAuth(testSecret)(next)(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	claims := ClaimsFrom(c)
	require.NotNil(t, claims)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "student", claims.Role)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	c, _ := contextWithToken("")
	err := RequireAuth(testSecret)(next)(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	c, _ := contextWithToken("garbage")
	err := RequireAuth(testSecret)(next)(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	token, err := auth.CreateToken(testSecret, 1, "admin", "Admin", time.Hour)
	require.NoError(t, err)

	c, rec := contextWithToken(token)
	err = RequireAuth(testSecret)(RequireAdmin()(next))(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_RejectsStudent(t *testing.T) {
	token, err := auth.CreateToken(testSecret, 7, "student", "Somchai", time.Hour)
	require.NoError(t, err)

	c, _ := contextWithToken(token)
	err = RequireAuth(testSecret)(RequireAdmin()(next))(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}
