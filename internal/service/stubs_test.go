package service

import (
	"context"

	"pulse/internal/models"
)

// Function-field stubs for the repository interfaces. Only the methods a
// test sets are callable; the rest panic, which surfaces unexpected calls.

type stubUserRepo struct {
	getByID       func(ctx context.Context, id uint) (*models.User, error)
	getByEmail    func(ctx context.Context, email string) (*models.User, error)
	getByUsername func(ctx context.Context, username string) (*models.User, error)
	create        func(ctx context.Context, user *models.User) error
	update        func(ctx context.Context, user *models.User) error
	delete        func(ctx context.Context, id uint) error
	list          func(ctx context.Context, limit, offset int) ([]models.User, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByID(ctx, id)
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}
func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsername(ctx, username)
}
func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.create(ctx, user)
}
func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.update(ctx, user)
}
func (s *stubUserRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}
func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.list(ctx, limit, offset)
}

type stubPostRepo struct {
	create        func(ctx context.Context, post *models.Post) error
	getByID       func(ctx context.Context, id uint) (*models.Post, error)
	getWithCounts func(ctx context.Context, id uint) (*models.Post, error)
	getByUserID   func(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	list          func(ctx context.Context, limit, offset int) ([]*models.Post, error)
	update        func(ctx context.Context, post *models.Post) error
	delete        func(ctx context.Context, id uint) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.create(ctx, post)
}
func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByID(ctx, id)
}
func (s *stubPostRepo) GetWithCounts(ctx context.Context, id uint) (*models.Post, error) {
	return s.getWithCounts(ctx, id)
}
func (s *stubPostRepo) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.getByUserID(ctx, userID, limit, offset)
}
func (s *stubPostRepo) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.list(ctx, limit, offset)
}
func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	return s.update(ctx, post)
}
func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

type stubCommentRepo struct {
	create     func(ctx context.Context, comment *models.Comment) error
	getByID    func(ctx context.Context, id uint) (*models.Comment, error)
	listByPost func(ctx context.Context, postID uint) ([]*models.Comment, error)
	update     func(ctx context.Context, comment *models.Comment) error
	delete     func(ctx context.Context, id uint) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.create(ctx, comment)
}
func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByID(ctx, id)
}
func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPost(ctx, postID)
}
func (s *stubCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	return s.update(ctx, comment)
}
func (s *stubCommentRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

type stubLikeRepo struct {
	toggle      func(ctx context.Context, postID, userID uint) (string, error)
	exists      func(ctx context.Context, postID, userID uint) (bool, error)
	countByPost func(ctx context.Context, postID uint) (int64, error)
}

func (s *stubLikeRepo) Toggle(ctx context.Context, postID, userID uint) (string, error) {
	return s.toggle(ctx, postID, userID)
}
func (s *stubLikeRepo) Exists(ctx context.Context, postID, userID uint) (bool, error) {
	return s.exists(ctx, postID, userID)
}
func (s *stubLikeRepo) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPost(ctx, postID)
}

type stubShareRepo struct {
	create      func(ctx context.Context, share *models.Share) error
	listByPost  func(ctx context.Context, postID uint) ([]*models.Share, error)
	countByPost func(ctx context.Context, postID uint) (int64, error)
}

func (s *stubShareRepo) Create(ctx context.Context, share *models.Share) error {
	return s.create(ctx, share)
}
func (s *stubShareRepo) ListByPost(ctx context.Context, postID uint) ([]*models.Share, error) {
	return s.listByPost(ctx, postID)
}
func (s *stubShareRepo) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPost(ctx, postID)
}
