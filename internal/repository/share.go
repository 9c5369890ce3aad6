package repository

import (
	"context"

	"pulse/internal/models"

	"gorm.io/gorm"
)

// ShareRepository defines the interface for share ledger operations.
// The share HTTP endpoint does not write Share rows (see DESIGN.md); the
// ledger is populated by seeding and available to future callers.
type ShareRepository interface {
	Create(ctx context.Context, share *models.Share) error
	ListByPost(ctx context.Context, postID uint) ([]*models.Share, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
}

type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository creates a new share repository.
func NewShareRepository(db *gorm.DB) ShareRepository {
	return &shareRepository{db: db}
}

func (r *shareRepository) Create(ctx context.Context, share *models.Share) error {
	if err := r.db.WithContext(ctx).Create(share).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *shareRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Share, error) {
	var shares []*models.Share
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&shares).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return shares, nil
}

func (r *shareRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Share{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
