package middleware

import (
	"encoding/json"
	"io"
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

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("AUTH_JWT_SECRET", testSecret)

	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) }

	app.Get("/public", ok)
	app.Get("/protected", Protected(), ok)
	app.Get("/expert", Protected(), ExpertRequired(), ok)
	app.Get("/admin", Protected(), AdminRequired(), ok)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, token string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestPublicPathNeedsNoToken(t *testing.T) {
	app := testApp(t)
	status, _ := doRequest(t, app, "/public", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestProtectedWithoutToken(t *testing.T) {
	app := testApp(t)
	status, body := doRequest(t, app, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.NotEmpty(t, body["error"])
	// The error message is the only field in the response.
	assert.Len(t, body, 1)
}

func TestProtectedWithGarbageToken(t *testing.T) {
	app := testApp(t)
	status, body := doRequest(t, app, "/protected", "not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.NotEmpty(t, body["error"])
}

func TestProtectedWithValidToken(t *testing.T) {
	app := testApp(t)
	status, _ := doRequest(t, app, "/protected", signToken(t, "member"))
	assert.Equal(t, http.StatusOK, status)
}

func TestExpertGate(t *testing.T) {
	app := testApp(t)

	status, body := doRequest(t, app, "/expert", signToken(t, "member"))
	assert.Equal(t, http.StatusForbidden, status)
	assert.NotEmpty(t, body["error"])

	status, _ = doRequest(t, app, "/expert", signToken(t, "expert"))
	assert.Equal(t, http.StatusOK, status)

	// Admins pass expert-only routes.
	status, _ = doRequest(t, app, "/expert", signToken(t, "admin"))
	assert.Equal(t, http.StatusOK, status)
}

func TestAdminGate(t *testing.T) {
	app := testApp(t)

	status, _ := doRequest(t, app, "/admin", signToken(t, "expert"))
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doRequest(t, app, "/admin", signToken(t, "admin"))
	assert.Equal(t, http.StatusOK, status)
}
