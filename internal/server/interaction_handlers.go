package server

import (
	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/interactions/like/:postId. Toggles the like
// state and reports "liked" or "unliked".
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return fail(c, err)
	}

	status, err := s.interactionService.ToggleLike(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "like toggled",
		"post_id", postID, "status", status)
	return c.JSON(models.LikeToggleResponse{Status: status})
}

// CommentOnPost handles POST /api/interactions/comment/:postId
func (s *Server) CommentOnPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return fail(c, err)
	}

	var input service.CommentCreateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}

	comment, err := s.interactionService.CreateComment(c.UserContext(), postID, currentUserID(c), input)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// SharePost handles POST /api/interactions/share/:postId. Republishes the
// post under the sharing user's account and returns the new post.
func (s *Server) SharePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return fail(c, err)
	}

	shared, err := s.interactionService.SharePost(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post shared",
		"source_post_id", postID, "new_post_id", shared.ID)
	return c.Status(fiber.StatusCreated).JSON(shared)
}
