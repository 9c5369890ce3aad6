package models

import "time"

// PostDetail is the detail-view serialization of a post. Unlike the list
// view (raw user id), it resolves the author to a username and carries
// interaction counts plus comment summaries.
type PostDetail struct {
	ID          uint      `json:"id"`
	User        string    `json:"user"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url"`
	VideoURL    string    `json:"video_url"`
	Visibility  string    `json:"visibility"`
	IsActive    bool      `json:"is_active"`
	Comments    []string  `json:"comments"`
	LikesCount  int       `json:"likes_count"`
	SharesCount int       `json:"shares_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TokenPair is the login response: a short-lived access token and a
// longer-lived refresh token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LikeToggleResponse reports the outcome of a like toggle.
type LikeToggleResponse struct {
	Status string `json:"status"`
}
