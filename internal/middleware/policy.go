package middleware

import (
	"context"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Decision is the typed outcome of an authorization policy check.
type Decision int

const (
	// Deny rejects the request with the policy's error.
	Deny Decision = iota
	// Allow lets the request through to the handler.
	Allow
)

// Policy decides whether a request may proceed. A Deny decision carries the
// domain error used to build the response.
type Policy func(c *fiber.Ctx) (Decision, error)

// Authorize runs the given policy before the handler chain continues.
func Authorize(policy Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision, err := policy(c)
		if decision != Allow {
			if err == nil {
				err = models.NewForbiddenError("Access denied")
			}
			return models.RespondWithError(c, models.StatusForError(err), err)
		}
		return c.Next()
	}
}

// Authenticated allows any request that carries a valid user ID
// (set by AuthRequired).
func Authenticated() Policy {
	return func(c *fiber.Ctx) (Decision, error) {
		if _, ok := c.Locals("userID").(uint); !ok {
			return Deny, models.NewUnauthorizedError("Authorization required")
		}
		return Allow, nil
	}
}

// AdminOnly allows only requests from users the lookup reports as admins.
// It must run after AuthRequired.
func AdminOnly(isAdmin func(ctx context.Context, userID uint) (bool, error)) Policy {
	return func(c *fiber.Ctx) (Decision, error) {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return Deny, models.NewUnauthorizedError("Authorization required")
		}
		admin, err := isAdmin(c.UserContext(), userID)
		if err != nil {
			return Deny, err
		}
		if !admin {
			return Deny, models.NewForbiddenError("Admin access required")
		}
		return Allow, nil
	}
}
