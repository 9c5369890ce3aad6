package models

import "time"

// Share records that a user shared a post. No uniqueness constraint: the same
// user may share the same post any number of times.
//
// NOTE: the share endpoint itself creates a copied Post and never writes a
// Share row; this mirrors the upstream behavior on purpose (see DESIGN.md).
// Rows are produced by seeding and by callers of ShareRepository directly.
type Share struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}
