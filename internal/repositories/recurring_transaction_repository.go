package repositories

import (
	"errors"
	"fmt"
	"time"

	"tracklytic/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecurringNotFound = errors.New("recurring transaction not found")

type RecurringTransactionRepository struct {
	db *gorm.DB
}

func NewRecurringTransactionRepository(db *gorm.DB) RecurringTransactionRepositoryInterface {
	return &RecurringTransactionRepository{db: db}
}

func (r *RecurringTransactionRepository) Create(recurring *models.RecurringTransaction) error {
	if recurring == nil {
		return errors.New("recurring transaction cannot be nil")
	}
	if err := r.db.Omit(clause.Associations).Create(recurring).Error; err != nil {
		return fmt.Errorf("failed to create recurring transaction: %w", err)
	}
	return nil
}

func (r *RecurringTransactionRepository) GetByID(userID, id uuid.UUID) (*models.RecurringTransaction, error) {
	var recurring models.RecurringTransaction
	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&recurring).Error; err != nil {
		return nil, notFoundOr(err, ErrRecurringNotFound, func(err error) error {
			return fmt.Errorf("failed to get recurring transaction: %w", err)
		})
	}
	return &recurring, nil
}

func (r *RecurringTransactionRepository) GetByUserID(userID uuid.UUID, activeOnly bool) ([]models.RecurringTransaction, error) {
	query := r.db.Preload("Category").Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var templates []models.RecurringTransaction
	if err := query.Order("next_due_date ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}
	return templates, nil
}

func (r *RecurringTransactionRepository) Deactivate(userID, id uuid.UUID) error {
	result := r.db.Model(&models.RecurringTransaction{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"active": false, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate recurring transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecurringNotFound
	}
	return nil
}

// GetDue pages through active templates whose next due date is on or before
// now, ordered by id and starting after afterID.
func (r *RecurringTransactionRepository) GetDue(now time.Time, afterID uuid.UUID, limit int) ([]models.RecurringTransaction, error) {
	var templates []models.RecurringTransaction
	query := r.db.Where("active = ? AND next_due_date <= ?", true, models.DateOnly(now))
	if afterID != uuid.Nil {
		query = query.Where("id > ?", afterID)
	}
	if err := query.Order("id ASC").Limit(limit).Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to get due recurring transactions: %w", err)
	}
	return templates, nil
}

func (r *RecurringTransactionRepository) RecordOccurrence(recurring *models.RecurringTransaction, tx *models.Transaction) error {
	if recurring == nil || tx == nil {
		return errors.New("recurring transaction and occurrence are required")
	}

	return r.db.Transaction(func(dbTx *gorm.DB) error {
		if err := dbTx.Omit(clause.Associations).Create(tx).Error; err != nil {
			return fmt.Errorf("failed to create recurring occurrence: %w", err)
		}

		recurring.UpdatedAt = time.Now().UTC()
		if err := dbTx.Omit(clause.Associations).Save(recurring).Error; err != nil {
			return fmt.Errorf("failed to advance recurring transaction: %w", err)
		}
		return nil
	})
}
