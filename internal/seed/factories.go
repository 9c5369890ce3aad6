// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"

	"pulse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	genders := []string{models.GenderMale, models.GenderFemale, ""}
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Gender:   genders[gofakeit.Number(0, len(genders)-1)],
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user.Password = string(hashedPassword)

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample `models.Post` for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:     user.ID,
		Content:    gofakeit.Paragraph(1, 3, 5, "\n"),
		ImageURL:   fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		Visibility: models.VisibilityPublic,
		IsActive:   true,
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
		PostID:  post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `post`. Duplicate pairs are
// ignored so random seeding never trips the unique index.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

// CreateShare persists a share ledger row from `user` on `post`.
func (f *Factory) CreateShare(user *models.User, post *models.Post) error {
	share := &models.Share{
		UserID: user.ID,
		PostID: post.ID,
	}
	return f.db.Create(share).Error
}
