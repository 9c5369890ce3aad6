// Package service implements business logic on top of the repository layer.
package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the fields accepted by user registration.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	Bio       string `json:"bio"`
	Avatar    string `json:"avatar"`
	Gender    string `json:"gender"`
}

// ProfileUpdateInput carries optional fields for a partial profile update.
// Nil pointers leave the corresponding column untouched.
type ProfileUpdateInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
	Gender   *string `json:"gender"`
}

// AdminUserUpdateInput extends profile updates with admin-only fields.
type AdminUserUpdateInput struct {
	ProfileUpdateInput
	IsAdmin *bool `json:"is_admin"`
}

// UserService handles user account and profile operations.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register validates input, hashes the password, and creates the account.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Password != in.Password2 {
		return nil, models.NewValidationError("passwords do not match")
	}
	if in.Gender != "" && !models.ValidGender(in.Gender) {
		return nil, models.NewValidationError("invalid gender")
	}

	if existing, err := s.users.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("username already taken")
	}
	if existing, err := s.users.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		Bio:      in.Bio,
		Avatar:   in.Avatar,
		Gender:   in.Gender,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email/password credentials. Failures are reported as
// a validation error so both unknown-account and wrong-password cases produce
// the same client-visible response.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewValidationError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewValidationError("invalid credentials")
	}
	return user, nil
}

// GetProfile returns the user with the given ID.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update to the user's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdateInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.applyProfileUpdate(ctx, user, in); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns a page of users. Caller is responsible for authorization.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.users.List(ctx, limit, offset)
}

// AdminUpdateUser applies a partial update to any account, including the
// admin flag.
func (s *UserService) AdminUpdateUser(ctx context.Context, userID uint, in AdminUserUpdateInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.applyProfileUpdate(ctx, user, in.ProfileUpdateInput); err != nil {
		return nil, err
	}
	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// IsAdmin reports whether the user exists and carries the admin flag.
func (s *UserService) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}

func (s *UserService) applyProfileUpdate(ctx context.Context, user *models.User, in ProfileUpdateInput) error {
	if in.Username != nil && *in.Username != user.Username {
		if err := validation.ValidateUsername(*in.Username); err != nil {
			return models.NewValidationError(err.Error())
		}
		existing, err := s.users.GetByUsername(ctx, *in.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return models.NewValidationError("username already taken")
		}
		user.Username = *in.Username
	}
	if in.Email != nil && *in.Email != user.Email {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			return models.NewValidationError(err.Error())
		}
		existing, err := s.users.GetByEmail(ctx, *in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return models.NewValidationError("email already registered")
		}
		user.Email = *in.Email
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	if in.Gender != nil {
		if *in.Gender != "" && !models.ValidGender(*in.Gender) {
			return models.NewValidationError("invalid gender")
		}
		user.Gender = *in.Gender
	}
	return nil
}
