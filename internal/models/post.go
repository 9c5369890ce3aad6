package models

import (
	"time"

	"gorm.io/gorm"
)

// Visibility values for a post. Visibility is stored but not enforced as an
// access filter anywhere in this service.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// SharedContentPrefix marks a post created through the share endpoint.
const SharedContentPrefix = "Shared: "

// Post is a content item authored by a user. UserID is immutable after
// creation; UpdatedAt is refreshed by GORM on every save.
type Post struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"not null" json:"user_id"`
	User       *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content    string `gorm:"not null" json:"content"`
	ImageURL   string `json:"image_url"`
	VideoURL   string `json:"video_url"`
	Visibility string `gorm:"default:public" json:"visibility"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`
	// LikesCount is read-only; computed at query time
	LikesCount int `gorm:"->" json:"likes_count,omitempty"`
	// SharesCount is read-only; computed at query time
	SharesCount int            `gorm:"->" json:"shares_count,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// ValidVisibility reports whether v is an accepted visibility value.
func ValidVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}
