package repository

import (
	"context"

	"pulse/internal/cache"
	"pulse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations.
type LikeRepository interface {
	// Toggle atomically likes the post if no like exists for (post, user)
	// and removes the like otherwise. Returns the resulting status.
	Toggle(ctx context.Context, postID, userID uint) (string, error)
	Exists(ctx context.Context, postID, userID uint) (bool, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle runs delete-then-insert inside one transaction. The unique index on
// (post_id, user_id) is the serialization point: a concurrent toggle that
// wins the insert race makes our conflict-ignored insert affect zero rows,
// in which case the pair is already liked and we fall back to deleting it.
// A duplicate-key violation can therefore never escape this method.
func (r *likeRepository) Toggle(ctx context.Context, postID, userID uint) (string, error) {
	status := models.LikeStatusUnliked
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			status = models.LikeStatusUnliked
			return nil
		}

		ins := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&models.Like{PostID: postID, UserID: userID})
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 0 {
			// Lost the race: a concurrent request created the like between
			// our delete and insert. Treat it as present and remove it.
			del := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
			if del.Error != nil {
				return del.Error
			}
			status = models.LikeStatusUnliked
			return nil
		}

		status = models.LikeStatusLiked
		return nil
	})
	if err != nil {
		return "", models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostKey(postID))
	return status, nil
}

func (r *likeRepository) Exists(ctx context.Context, postID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
