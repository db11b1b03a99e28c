package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func signToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user_2abc",
		"role": "member",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// setupExpertApp routes the expert-application endpoint against a mocked
// database so the handler's full request path runs in-process.
func setupExpertApp(t *testing.T) (sqlmock.Sqlmock, *fiber.App) {
	t.Helper()
	t.Setenv("AUTH_JWT_SECRET", testSecret)

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	orig := database.DB
	database.DB = gdb
	t.Cleanup(func() { database.DB = orig })

	app := fiber.New()
	app.Post("/api/v1/experts", middleware.Protected(), CreateExpertProfile)
	return mock, app
}

func postExpertProfile(t *testing.T, app *fiber.App) (int, map[string]interface{}) {
	t.Helper()
	body := `{"expertise_areas":"distributed systems","years_experience":8}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/experts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func userRows(userID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "external_id", "name", "username", "email", "role"}).
		AddRow(userID.String(), "user_2abc", "Jane", "jane", "jane@example.com", "member")
}

func TestCreateExpertProfileSecondApplicationConflicts(t *testing.T) {
	mock, app := setupExpertApp(t)

	userID := uuid.New()
	profileID := uuid.New()

	// First application: no existing profile, insert succeeds.
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(userRows(userID))
	mock.ExpectQuery(`SELECT (.+) FROM "expert_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "expert_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(profileID.String()))

	status, body := postExpertProfile(t, app)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "pending", body["status"])

	// Second application from the same user hits the existing profile.
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(userRows(userID))
	mock.ExpectQuery(`SELECT (.+) FROM "expert_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).
			AddRow(profileID.String(), userID.String(), "pending"))

	status, body = postExpertProfile(t, app)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Expert profile already exists", body["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
