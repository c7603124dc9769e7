package repositories

import (
	"errors"
	"fmt"
	"strings"

	"tracklytic/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, func(err error) error {
			return fmt.Errorf("failed to get user by ID: %w", err)
		})
	}
	return &user, nil
}

// GetByEmail looks a user up case-insensitively.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	email = strings.ToLower(strings.TrimSpace(email))

	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, func(err error) error {
			return fmt.Errorf("failed to get user by email: %w", err)
		})
	}
	return &user, nil
}

func (r *UserRepository) Update(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if err := r.db.Save(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateLoginState persists the lockout counters and last login time only.
func (r *UserRepository) UpdateLoginState(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	result := r.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"failed_login_attempts": user.FailedLoginAttempts,
		"locked_until":          user.LockedUntil,
		"last_login_at":         user.LastLoginAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update login state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
