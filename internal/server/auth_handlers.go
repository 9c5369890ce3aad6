package server

import (
	"strconv"
	"time"

	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// Register handles POST /api/users/register
func (s *Server) Register(c *fiber.Ctx) error {
	var input service.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}

	user, err := s.userService.Register(c.UserContext(), input)
	if err != nil {
		return fail(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		"user_id", user.ID, "username", user.Username)
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /api/users/login
func (s *Server) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}

	user, err := s.userService.Authenticate(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return fail(c, err)
	}

	pair, err := s.generateTokenPair(user.ID)
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user logged in", "user_id", user.ID)
	return c.JSON(pair)
}

// Refresh handles POST /api/users/refresh: exchanges a valid refresh token
// for a fresh token pair.
func (s *Server) Refresh(c *fiber.Ctx) error {
	var input struct {
		Refresh string `json:"refresh"`
	}
	if err := c.BodyParser(&input); err != nil || input.Refresh == "" {
		return fail(c, models.NewValidationError("refresh token required"))
	}

	claims, err := middleware.ParseToken(input.Refresh)
	if err != nil {
		return fail(c, err)
	}
	if typ, _ := claims["typ"].(string); typ != middleware.TokenTypeRefresh {
		return fail(c, models.NewUnauthorizedError("Refresh token required"))
	}
	userID, err := middleware.SubjectUserID(claims)
	if err != nil {
		return fail(c, err)
	}

	// The account must still exist.
	if _, err := s.userService.GetProfile(c.UserContext(), userID); err != nil {
		return fail(c, models.NewUnauthorizedError("Invalid refresh token"))
	}

	pair, err := s.generateTokenPair(userID)
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}
	return c.JSON(pair)
}

// generateTokenPair issues a signed access/refresh token pair for the user.
func (s *Server) generateTokenPair(userID uint) (*models.TokenPair, error) {
	access, err := s.signToken(userID, middleware.TokenTypeAccess, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(userID, middleware.TokenTypeRefresh, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *Server) signToken(userID uint, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": middleware.TokenIssuer,
		"aud": middleware.TokenAudience,
		"jti": uuid.NewString(),
		"typ": typ,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
