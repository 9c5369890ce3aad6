package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"pulse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data. Deletion order respects foreign keys.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.Like{}, &models.Share{}, &models.Comment{}, &models.Post{}, &models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// Seed creates users, posts, and an interaction mesh of likes, comments,
// replies, and share ledger rows.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}

	// One known admin account for manual testing.
	admin, err := s.factory.CreateUser(func(u *models.User) {
		u.Username = "admin"
		u.Email = "admin@pulse.local"
		u.IsAdmin = true
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	users := []*models.User{admin}
	for i := 1; i < opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[r.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("created %d posts", len(posts))

	for _, post := range posts {
		// Likes: a random subset of users.
		for _, user := range users {
			if r.Intn(4) == 0 {
				if err := s.factory.CreateLike(user, post); err != nil {
					return fmt.Errorf("failed to create like: %w", err)
				}
			}
		}

		// Comments with occasional replies.
		numComments := r.Intn(5)
		var parents []*models.Comment
		for i := 0; i < numComments; i++ {
			commenter := users[r.Intn(len(users))]
			comment, err := s.factory.CreateComment(commenter, post)
			if err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			parents = append(parents, comment)
		}
		if len(parents) > 0 && r.Intn(2) == 0 {
			parent := parents[r.Intn(len(parents))]
			replier := users[r.Intn(len(users))]
			if _, err := s.factory.CreateComment(replier, post, func(c *models.Comment) {
				c.ParentID = &parent.ID
			}); err != nil {
				return fmt.Errorf("failed to create reply: %w", err)
			}
		}

		// Share ledger rows. The share endpoint never writes these, so
		// seeding is what keeps the detail view's share counts non-zero.
		numShares := r.Intn(3)
		for i := 0; i < numShares; i++ {
			sharer := users[r.Intn(len(users))]
			if err := s.factory.CreateShare(sharer, post); err != nil {
				return fmt.Errorf("failed to create share: %w", err)
			}
		}
	}

	log.Println("interaction mesh created")
	return nil
}
