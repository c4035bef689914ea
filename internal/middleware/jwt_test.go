package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatplan/internal/utils"
)

const testSecret = "test-secret"

// run passes a request with the given Authorization header through
// JWTAuth and RequireAdmin chained, ending in a 200 handler.
func run(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/layout", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := JWTAuth(testSecret)(RequireAdmin()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))
	require.NoError(t, h(c))
	return rec
}

func TestJWTAuthAdminToken(t *testing.T) {
	tok, err := utils.NewAdminToken(testSecret, 5)
	require.NoError(t, err)

	rec := run(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec := run(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAdminToken("other-secret", 5)
	require.NoError(t, err)

	rec := run(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": utils.AdminRole,
		"exp":  time.Now().Add(-time.Minute).Unix(),
		"iat":  time.Now().Add(-time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := run(t, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminRejectsOtherRoles(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "somebody",
		"role": "USER",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := run(t, "Bearer "+signed)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
