package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"pulse/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware_test_secret_32_chars!!"

func signTestToken(t *testing.T, userID uint, typ, issuer, audience string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": issuer,
		"aud": audience,
		"typ": typ,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func authTestApp() *fiber.App {
	InitMiddleware(&config.Config{JWTSecret: testSecret})
	app := fiber.New()
	app.Get("/private", AuthRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	app := authTestApp()

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{
			name:           "ValidAccessToken",
			header:         "Bearer " + signTestToken(t, 7, TokenTypeAccess, TokenIssuer, TokenAudience),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "MissingHeader",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "MalformedHeader",
			header:         "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "GarbageToken",
			header:         "Bearer garbage",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "RefreshTokenRejected",
			header:         "Bearer " + signTestToken(t, 7, TokenTypeRefresh, TokenIssuer, TokenAudience),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "WrongIssuer",
			header:         "Bearer " + signTestToken(t, 7, TokenTypeAccess, "someone-else", TokenAudience),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "WrongAudience",
			header:         "Bearer " + signTestToken(t, 7, TokenTypeAccess, TokenIssuer, "other-client"),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	InitMiddleware(&config.Config{JWTSecret: testSecret})
	app := fiber.New()
	app.Get("/feed", OptionalAuth, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})

	tests := []struct {
		name           string
		header         string
		expectedUserID any
	}{
		{
			name:           "ValidTokenResolvesUser",
			header:         "Bearer " + signTestToken(t, 42, TokenTypeAccess, TokenIssuer, TokenAudience),
			expectedUserID: float64(42),
		},
		{
			name:           "NoHeaderStillPasses",
			header:         "",
			expectedUserID: nil,
		},
		{
			name:           "GarbageTokenStillPasses",
			header:         "Bearer garbage",
			expectedUserID: nil,
		},
		{
			name:           "RefreshTokenIgnored",
			header:         "Bearer " + signTestToken(t, 42, TokenTypeRefresh, TokenIssuer, TokenAudience),
			expectedUserID: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/feed", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedUserID, body["user_id"])
		})
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	InitMiddleware(&config.Config{JWTSecret: testSecret})

	claims := jwt.MapClaims{
		"sub": "1",
		"iss": TokenIssuer,
		"aud": TokenAudience,
		"typ": TokenTypeAccess,
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.Error(t, err)
}
