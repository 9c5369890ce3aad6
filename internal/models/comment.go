package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Comment is a comment on a post. ParentID, when set, references another
// comment and makes this comment a reply. Parents may nest arbitrarily.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PostID    uint           `gorm:"not null" json:"post_id"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	Content   string         `gorm:"not null" json:"content"`
	ParentID  *uint          `gorm:"index" json:"parent"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Parent    *Comment       `gorm:"foreignKey:ParentID" json:"-"`
	Replies   []Comment      `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Summary returns the short string form used by post detail responses.
func (c *Comment) Summary() string {
	username := ""
	if c.User != nil {
		username = c.User.Username
	}
	return fmt.Sprintf("Comment by %s on Post %d", username, c.PostID)
}
