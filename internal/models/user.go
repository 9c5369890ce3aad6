// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Gender values accepted for a user profile. An empty string means unset.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User represents a registered account.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	Gender    string         `json:"gender"`
	IsAdmin   bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// ValidGender reports whether g is an accepted gender value.
func ValidGender(g string) bool {
	return g == "" || g == GenderMale || g == GenderFemale
}
