package repositories

import (
	"errors"
	"fmt"

	"tracklytic/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// CategoryRepository handles database operations for user categories
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: db}
}

// Create stores a category. The (user, tag) pair is unique so the same name in a
// different case is reported as ErrCategoryAlreadyExists.
func (r *CategoryRepository) Create(category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	if err := r.db.Create(category).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(userID, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
		return nil, notFoundOr(err, ErrCategoryNotFound, func(err error) error {
			return fmt.Errorf("failed to get category: %w", err)
		})
	}
	return &category, nil
}

func (r *CategoryRepository) GetByTag(userID uuid.UUID, tag string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("user_id = ? AND tag = ?", userID, models.CategoryTag(tag)).First(&category).Error; err != nil {
		return nil, notFoundOr(err, ErrCategoryNotFound, func(err error) error {
			return fmt.Errorf("failed to get category by tag: %w", err)
		})
	}
	return &category, nil
}

func (r *CategoryRepository) GetByUserID(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Delete removes the category and its budget. Transactions keep their rows with the
// category reference cleared.
func (r *CategoryRepository) Delete(userID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Category{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}

		if err := tx.Where("category_id = ? AND user_id = ?", id, userID).
			Delete(&models.CategorySpendingLimit{}).Error; err != nil {
			return fmt.Errorf("failed to delete category budget: %w", err)
		}

		if err := tx.Model(&models.Transaction{}).
			Where("category_id = ? AND user_id = ?", id, userID).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach category transactions: %w", err)
		}
		return nil
	})
}
