package server

import (
	"strconv"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parseID parses a positive integer route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}

// parsePagination reads limit/offset query params, clamping limit to
// [1, maxPageSize] and defaulting to defaultPageSize.
func parsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", defaultPageSize)
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// currentUserID returns the authenticated user ID set by the auth middleware.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// fail maps a domain error onto the standard error response.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
