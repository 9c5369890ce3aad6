package service

import (
	"context"

	"pulse/internal/cache"
	"pulse/internal/models"
	"pulse/internal/repository"
)

// PostCreateInput carries the fields accepted by post creation.
type PostCreateInput struct {
	Content    string `json:"content"`
	ImageURL   string `json:"image_url"`
	VideoURL   string `json:"video_url"`
	Visibility string `json:"visibility"`
}

// PostUpdateInput carries optional fields for a partial post update.
type PostUpdateInput struct {
	Content    *string `json:"content"`
	ImageURL   *string `json:"image_url"`
	VideoURL   *string `json:"video_url"`
	Visibility *string `json:"visibility"`
	IsActive   *bool   `json:"is_active"`
}

// PostService handles post CRUD and detail assembly.
type PostService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

// NewPostService creates a new post service.
func NewPostService(posts repository.PostRepository, comments repository.CommentRepository) *PostService {
	return &PostService{posts: posts, comments: comments}
}

// Create validates and stores a new post for the given author.
func (s *PostService) Create(ctx context.Context, userID uint, in PostCreateInput) (*models.Post, error) {
	if in.Visibility == "" {
		in.Visibility = models.VisibilityPublic
	}
	if !models.ValidVisibility(in.Visibility) {
		return nil, models.NewValidationError("invalid visibility")
	}
	post := &models.Post{
		UserID:     userID,
		Content:    in.Content,
		ImageURL:   in.ImageURL,
		VideoURL:   in.VideoURL,
		Visibility: in.Visibility,
		IsActive:   true,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List returns a page of posts in insertion order.
func (s *PostService) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.posts.List(ctx, limit, offset)
}

// Get returns a single post without counts or comments.
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// GetDetail assembles the expanded post view: author username, like and share
// counts, and comment summaries. The assembled view is cached; writes to the
// post or its interactions invalidate the entry.
func (s *PostService) GetDetail(ctx context.Context, id uint) (*models.PostDetail, error) {
	var detail models.PostDetail
	err := cache.Aside(ctx, cache.PostKey(id), &detail, cache.PostTTL, func() error {
		built, err := s.buildDetail(ctx, id)
		if err != nil {
			return err
		}
		detail = *built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *PostService) buildDetail(ctx context.Context, id uint) (*models.PostDetail, error) {
	post, err := s.posts.GetWithCounts(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	summaries := make([]string, 0, len(comments))
	for _, c := range comments {
		summaries = append(summaries, c.Summary())
	}

	username := ""
	if post.User != nil {
		username = post.User.Username
	}

	return &models.PostDetail{
		ID:          post.ID,
		User:        username,
		Content:     post.Content,
		ImageURL:    post.ImageURL,
		VideoURL:    post.VideoURL,
		Visibility:  post.Visibility,
		IsActive:    post.IsActive,
		Comments:    summaries,
		LikesCount:  post.LikesCount,
		SharesCount: post.SharesCount,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}, nil
}

// Update applies a partial update. Only the author may modify a post.
func (s *PostService) Update(ctx context.Context, postID, userID uint, in PostUpdateInput) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, models.NewForbiddenError("you do not own this post")
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.ImageURL != nil {
		post.ImageURL = *in.ImageURL
	}
	if in.VideoURL != nil {
		post.VideoURL = *in.VideoURL
	}
	if in.Visibility != nil {
		if !models.ValidVisibility(*in.Visibility) {
			return nil, models.NewValidationError("invalid visibility")
		}
		post.Visibility = *in.Visibility
	}
	if in.IsActive != nil {
		post.IsActive = *in.IsActive
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post and its interactions. Only the author may delete.
func (s *PostService) Delete(ctx context.Context, postID, userID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("you do not own this post")
	}
	return s.posts.Delete(ctx, postID)
}
