package server

import (
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/profile
func (s *Server) GetProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.UserContext(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile handles PUT /api/users/profile. Absent fields are left
// unchanged.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var input service.ProfileUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), currentUserID(c), input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// ListUsers handles GET /api/users (admin only)
func (s *Server) ListUsers(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	users, err := s.userService.ListUsers(c.UserContext(), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// AdminUpdateUser handles PUT /api/users/:id (admin only)
func (s *Server) AdminUpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var input service.AdminUserUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}

	user, err := s.userService.AdminUpdateUser(c.UserContext(), id, input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}
