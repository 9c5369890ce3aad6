package service

import (
	"context"

	"pulse/internal/cache"
	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/validation"
)

// CommentCreateInput carries the fields accepted by comment creation. The
// reply reference travels as "parent" on the wire, matching the comment
// serialization.
type CommentCreateInput struct {
	Content  string `json:"content"`
	ParentID *uint  `json:"parent"`
}

// InteractionService handles likes, comments, and shares.
type InteractionService struct {
	posts    repository.PostRepository
	likes    repository.LikeRepository
	comments repository.CommentRepository
	shares   repository.ShareRepository
}

// NewInteractionService creates a new interaction service.
func NewInteractionService(
	posts repository.PostRepository,
	likes repository.LikeRepository,
	comments repository.CommentRepository,
	shares repository.ShareRepository,
) *InteractionService {
	return &InteractionService{posts: posts, likes: likes, comments: comments, shares: shares}
}

// ToggleLike flips the like state for (post, user) and returns "liked" or
// "unliked". The post must exist.
func (s *InteractionService) ToggleLike(ctx context.Context, postID, userID uint) (string, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return "", err
	}
	return s.likes.Toggle(ctx, postID, userID)
}

// CreateComment adds a comment (optionally a reply) to a post. Content must
// contain non-whitespace text and a referenced parent comment must exist.
func (s *InteractionService) CreateComment(ctx context.Context, postID, userID uint, in CommentCreateInput) (*models.Comment, error) {
	if !validation.NonEmpty(in.Content) {
		return nil, models.NewValidationError("comment content cannot be empty")
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if in.ParentID != nil {
		if _, err := s.comments.GetByID(ctx, *in.ParentID); err != nil {
			return nil, err
		}
	}

	comment := &models.Comment{
		PostID:   postID,
		UserID:   userID,
		Content:  in.Content,
		ParentID: in.ParentID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cache.PostKey(postID))
	return comment, nil
}

// ListComments returns all comments on a post. The post must exist.
func (s *InteractionService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID)
}

// SharePost republishes an existing post as a new post owned by the sharing
// user, with the content prefixed. No share ledger row is written here; the
// source post's share count is unaffected.
func (s *InteractionService) SharePost(ctx context.Context, postID, userID uint) (*models.Post, error) {
	source, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	shared := &models.Post{
		UserID:     userID,
		Content:    models.SharedContentPrefix + source.Content,
		ImageURL:   source.ImageURL,
		VideoURL:   source.VideoURL,
		Visibility: source.Visibility,
		IsActive:   true,
	}
	if err := s.posts.Create(ctx, shared); err != nil {
		return nil, err
	}
	return shared, nil
}
