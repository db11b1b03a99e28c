package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user_2abc",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func policyApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("AUTH_JWT_SECRET", testSecret)

	app := fiber.New()
	UserRoutes(app)
	AdminRoutes(app)
	return app
}

func statusFor(t *testing.T, app *fiber.App, method, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

// Browsing the member directory is not on the public allow-list; the auth
// middleware must reject anonymous callers before any handler runs.
func TestUserBrowsingRequiresToken(t *testing.T) {
	app := policyApp(t)

	status := statusFor(t, app, http.MethodGet, "/api/v1/users", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status = statusFor(t, app, http.MethodGet, "/api/v1/users/some-id", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status = statusFor(t, app, http.MethodGet, "/api/v1/users/me", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdminUserEndpointsRejectNonAdmins(t *testing.T) {
	app := policyApp(t)

	status := statusFor(t, app, http.MethodGet, "/api/v1/admin/users", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	member := signToken(t, "member")
	status = statusFor(t, app, http.MethodGet, "/api/v1/admin/users", member)
	assert.Equal(t, http.StatusForbidden, status)

	status = statusFor(t, app, http.MethodPut, "/api/v1/admin/users/some-id/role", member)
	assert.Equal(t, http.StatusForbidden, status)

	expert := signToken(t, "expert")
	status = statusFor(t, app, http.MethodPut, "/api/v1/admin/users/some-id/role", expert)
	assert.Equal(t, http.StatusForbidden, status)
}
