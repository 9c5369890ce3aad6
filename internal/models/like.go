package models

import "time"

// Like records that a user liked a post.
// The combination of UserID and PostID must be unique; the composite index is
// the serialization point for concurrent like toggles.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// Like toggle outcomes reported to clients.
const (
	LikeStatusLiked   = "liked"
	LikeStatusUnliked = "unliked"
)
