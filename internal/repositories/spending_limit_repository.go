package repositories

import (
	"errors"
	"fmt"

	"tracklytic/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrGeneralLimitNotFound  = errors.New("general spending limit not found")
	ErrGeneralLimitExists    = errors.New("general spending limit already exists")
	ErrCategoryLimitNotFound = errors.New("category spending limit not found")
	ErrCategoryLimitExists   = errors.New("category spending limit already exists")
)

// SpendingLimitRepository stores general and per-category budgets
type SpendingLimitRepository struct {
	db *gorm.DB
}

func NewSpendingLimitRepository(db *gorm.DB) SpendingLimitRepositoryInterface {
	return &SpendingLimitRepository{db: db}
}

func (r *SpendingLimitRepository) CreateGeneral(limit *models.GeneralSpendingLimit) error {
	if limit == nil {
		return errors.New("spending limit cannot be nil")
	}
	if err := r.db.Create(limit).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrGeneralLimitExists
		}
		return fmt.Errorf("failed to create general spending limit: %w", err)
	}
	return nil
}

func (r *SpendingLimitRepository) GetGeneralByUserID(userID uuid.UUID) (*models.GeneralSpendingLimit, error) {
	var limit models.GeneralSpendingLimit
	if err := r.db.Where("user_id = ?", userID).First(&limit).Error; err != nil {
		return nil, notFoundOr(err, ErrGeneralLimitNotFound, func(err error) error {
			return fmt.Errorf("failed to get general spending limit: %w", err)
		})
	}
	return &limit, nil
}

func (r *SpendingLimitRepository) GetGeneralByID(userID, id uuid.UUID) (*models.GeneralSpendingLimit, error) {
	var limit models.GeneralSpendingLimit
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&limit).Error; err != nil {
		return nil, notFoundOr(err, ErrGeneralLimitNotFound, func(err error) error {
			return fmt.Errorf("failed to get general spending limit: %w", err)
		})
	}
	return &limit, nil
}

func (r *SpendingLimitRepository) UpdateGeneral(limit *models.GeneralSpendingLimit) error {
	if limit == nil {
		return errors.New("spending limit cannot be nil")
	}
	if err := r.db.Save(limit).Error; err != nil {
		return fmt.Errorf("failed to update general spending limit: %w", err)
	}
	return nil
}

func (r *SpendingLimitRepository) CreateForCategory(limit *models.CategorySpendingLimit) error {
	if limit == nil {
		return errors.New("spending limit cannot be nil")
	}
	if err := r.db.Omit(clause.Associations).Create(limit).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCategoryLimitExists
		}
		return fmt.Errorf("failed to create category spending limit: %w", err)
	}
	return nil
}

func (r *SpendingLimitRepository) GetCategoryLimitByID(userID, id uuid.UUID) (*models.CategorySpendingLimit, error) {
	var limit models.CategorySpendingLimit
	if err := r.db.Preload("Category").Where("id = ? AND user_id = ?", id, userID).First(&limit).Error; err != nil {
		return nil, notFoundOr(err, ErrCategoryLimitNotFound, func(err error) error {
			return fmt.Errorf("failed to get category spending limit: %w", err)
		})
	}
	return &limit, nil
}

func (r *SpendingLimitRepository) GetCategoryLimitByCategory(userID, categoryID uuid.UUID) (*models.CategorySpendingLimit, error) {
	var limit models.CategorySpendingLimit
	if err := r.db.Preload("Category").
		Where("category_id = ? AND user_id = ?", categoryID, userID).
		First(&limit).Error; err != nil {
		return nil, notFoundOr(err, ErrCategoryLimitNotFound, func(err error) error {
			return fmt.Errorf("failed to get category spending limit: %w", err)
		})
	}
	return &limit, nil
}

func (r *SpendingLimitRepository) ListCategoryLimits(userID uuid.UUID) ([]models.CategorySpendingLimit, error) {
	var limits []models.CategorySpendingLimit
	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&limits).Error; err != nil {
		return nil, fmt.Errorf("failed to list category spending limits: %w", err)
	}
	return limits, nil
}

func (r *SpendingLimitRepository) UpdateCategoryLimit(limit *models.CategorySpendingLimit) error {
	if limit == nil {
		return errors.New("spending limit cannot be nil")
	}
	if err := r.db.Omit(clause.Associations).Save(limit).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCategoryLimitExists
		}
		return fmt.Errorf("failed to update category spending limit: %w", err)
	}
	return nil
}
