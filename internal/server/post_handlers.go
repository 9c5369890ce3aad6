package server

import (
	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts. The list view serializes posts with the
// raw author ID; the detail view resolves usernames and counts.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	posts, err := s.postService.List(c.UserContext(), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var input service.PostCreateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}

	post, err := s.postService.Create(c.UserContext(), currentUserID(c), input)
	if err != nil {
		return fail(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post created", "post_id", post.ID)
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id, returning the expanded detail view.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	detail, err := s.postService.GetDetail(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(detail)
}

// UpdatePost handles PUT /api/posts/:id. Only the author may update.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var input service.PostUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}

	post, err := s.postService.Update(c.UserContext(), id, currentUserID(c), input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id. Only the author may delete;
// likes, comments, and share records go with the post.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := s.postService.Delete(c.UserContext(), id, currentUserID(c)); err != nil {
		return fail(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post deleted", "post_id", id)
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	comments, err := s.interactionService.ListComments(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(comments)
}
