package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/internal/config"
	"pulse/internal/database"
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server on an in-memory SQLite database with all
// routes registered. The heavy middleware stack (limiter, CORS, metrics)
// is not installed; route-level auth middleware is.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test_secret_at_least_32_characters!",
		Port:      "0",
		Env:       "test",
	}
	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

// createTestUser persists a user with the password "password123".
func createTestUser(t *testing.T, db *gorm.DB, username string, admin bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		IsAdmin:  admin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// authHeader returns a Bearer header value carrying a fresh access token.
func authHeader(t *testing.T, s *Server, userID uint) string {
	t.Helper()
	pair, err := s.generateTokenPair(userID)
	require.NoError(t, err)
	return "Bearer " + pair.Access
}

// doJSON performs a JSON request against the app and returns the response.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, bearer string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody unmarshals the response body into dest.
func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
