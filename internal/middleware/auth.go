package middleware

import (
	"strconv"
	"strings"

	"pulse/internal/config"
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AuthRequired is a middleware that enforces authentication for protected routes.
// It accepts an access token in the Authorization header and stores the
// authenticated user ID in c.Locals("userID").
func AuthRequired(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized, err)
	}
	c.Locals("userID", userID)
	return c.Next()
}

// OptionalAuth extracts the user ID from the Authorization header when present
// and valid, but never rejects the request.
func OptionalAuth(c *fiber.Ctx) error {
	if userID, err := userIDFromHeader(c); err == nil {
		c.Locals("userID", userID)
	}
	return c.Next()
}

func userIDFromHeader(c *fiber.Ctx) (uint, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, models.NewUnauthorizedError("Authorization header required")
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, models.NewUnauthorizedError("Invalid authorization header format")
	}

	claims, err := ParseToken(parts[1])
	if err != nil {
		return 0, err
	}

	// Refresh tokens are only accepted by the token refresh flow.
	if typ, _ := claims["typ"].(string); typ != TokenTypeAccess {
		return 0, models.NewUnauthorizedError("Access token required")
	}

	return SubjectUserID(claims)
}

// ParseToken validates the token signature and standard claims and returns the claim set.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, models.NewUnauthorizedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.NewUnauthorizedError("Invalid token claims")
	}

	if issuer, ok := claims["iss"].(string); !ok || issuer != TokenIssuer {
		return nil, models.NewUnauthorizedError("Invalid token issuer")
	}
	if audience, ok := claims["aud"].(string); !ok || audience != TokenAudience {
		return nil, models.NewUnauthorizedError("Invalid token audience")
	}

	return claims, nil
}

// SubjectUserID extracts the user ID from the "sub" claim (RFC 7519 subject).
func SubjectUserID(claims jwt.MapClaims) (uint, error) {
	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, models.NewUnauthorizedError("Invalid token structure - missing subject")
	}

	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return 0, models.NewUnauthorizedError("Invalid user ID in token")
	}

	return uint(userID), nil
}

// Token claim constants shared between issuance and validation.
const (
	TokenIssuer      = "pulse-api"
	TokenAudience    = "pulse-client"
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)
