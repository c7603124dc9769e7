package repositories

import (
	"errors"
	"fmt"

	"tracklytic/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSavingPlanNotFound = errors.New("saving plan not found")

// progressColumns are the fields touched when money moves in or out of a plan.
var progressColumns = []string{"savings_reached_amount", "savings_reached", "status", "updated_at"}

type SavingPlanRepository struct {
	db *gorm.DB
}

func NewSavingPlanRepository(db *gorm.DB) SavingPlanRepositoryInterface {
	return &SavingPlanRepository{db: db}
}

func (r *SavingPlanRepository) Create(plan *models.SavingPlan) error {
	if plan == nil {
		return errors.New("saving plan cannot be nil")
	}
	if err := r.db.Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create saving plan: %w", err)
	}
	return nil
}

func (r *SavingPlanRepository) GetByID(userID, id uuid.UUID) (*models.SavingPlan, error) {
	var plan models.SavingPlan
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&plan).Error; err != nil {
		return nil, notFoundOr(err, ErrSavingPlanNotFound, func(err error) error {
			return fmt.Errorf("failed to get saving plan: %w", err)
		})
	}
	return &plan, nil
}

func (r *SavingPlanRepository) GetByUserID(userID uuid.UUID) ([]models.SavingPlan, error) {
	var plans []models.SavingPlan
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list saving plans: %w", err)
	}
	return plans, nil
}

func (r *SavingPlanRepository) Update(plan *models.SavingPlan) error {
	if plan == nil {
		return errors.New("saving plan cannot be nil")
	}
	if err := r.db.Save(plan).Error; err != nil {
		return fmt.Errorf("failed to update saving plan: %w", err)
	}
	return nil
}

// UpdateProgress writes only the reached amount and the derived status.
func (r *SavingPlanRepository) UpdateProgress(plan *models.SavingPlan) error {
	if plan == nil {
		return errors.New("saving plan cannot be nil")
	}
	return updatePlanProgress(r.db, plan)
}

// ListOpen pages through plans that are not Completed ordered by id, starting after afterID.
func (r *SavingPlanRepository) ListOpen(afterID uuid.UUID, limit int) ([]models.SavingPlan, error) {
	var plans []models.SavingPlan
	query := r.db.Where("status <> ?", models.SavingPlanStatusCompleted)
	if afterID != uuid.Nil {
		query = query.Where("id > ?", afterID)
	}
	if err := query.Order("id ASC").Limit(limit).Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list open saving plans: %w", err)
	}
	return plans, nil
}

func updatePlanProgress(db *gorm.DB, plan *models.SavingPlan) error {
	result := db.Model(plan).
		Where("user_id = ?", plan.UserID).
		Select(progressColumns).
		Updates(plan)
	if result.Error != nil {
		return fmt.Errorf("failed to update saving plan progress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSavingPlanNotFound
	}
	return nil
}
