package repositories

import (
	"errors"
	"fmt"
	"time"

	"tracklytic/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository handles database operations for transactions
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(tx *models.Transaction) error {
	if tx == nil {
		return errors.New("transaction cannot be nil")
	}
	if err := r.db.Omit(clause.Associations).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateWithEffects persists the template first so the transaction can reference it,
// then the plan progress, then the transaction itself. Any failure rolls everything back.
func (r *TransactionRepository) CreateWithEffects(tx *models.Transaction, plan *models.SavingPlan, recurring *models.RecurringTransaction) error {
	if tx == nil {
		return errors.New("transaction cannot be nil")
	}

	return r.db.Transaction(func(dbTx *gorm.DB) error {
		if recurring != nil {
			if err := dbTx.Omit(clause.Associations).Create(recurring).Error; err != nil {
				return fmt.Errorf("failed to create recurring transaction: %w", err)
			}
			tx.RecurringTransactionID = &recurring.ID
		}

		if plan != nil {
			if err := updatePlanProgress(dbTx, plan); err != nil {
				return err
			}
		}

		if err := dbTx.Omit(clause.Associations).Create(tx).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
}

func (r *TransactionRepository) GetByID(userID, id uuid.UUID) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&tx).Error; err != nil {
		return nil, notFoundOr(err, ErrTransactionNotFound, func(err error) error {
			return fmt.Errorf("failed to get transaction: %w", err)
		})
	}
	return &tx, nil
}

// List returns transactions newest first. When a cursor is supplied only rows strictly
// after it in (created_at DESC, id DESC) order are returned.
func (r *TransactionRepository) List(filters models.TransactionFilters) ([]models.Transaction, error) {
	query := r.db.Preload("Category").Where("user_id = ?", filters.UserID)

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.StartDate != nil {
		query = query.Where("transaction_date >= ?", models.DateOnly(*filters.StartDate))
	}
	if filters.EndDate != nil {
		query = query.Where("transaction_date <= ?", models.DateOnly(*filters.EndDate))
	}
	if filters.Cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)",
			filters.Cursor.Timestamp, filters.Cursor.Timestamp, filters.Cursor.ID)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}

	var transactions []models.Transaction
	if err := query.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *TransactionRepository) GetRecent(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("transaction_date DESC").Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

func (r *TransactionRepository) DeleteAndRefund(tx *models.Transaction, plan *models.SavingPlan) error {
	if tx == nil {
		return errors.New("transaction cannot be nil")
	}

	return r.db.Transaction(func(dbTx *gorm.DB) error {
		result := dbTx.Where("id = ? AND user_id = ?", tx.ID, tx.UserID).Delete(&models.Transaction{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete transaction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTransactionNotFound
		}

		if plan != nil {
			return updatePlanProgress(dbTx, plan)
		}
		return nil
	})
}

// SumDebits totals Debit amounts with transaction_date in [start, end).
func (r *TransactionRepository) SumDebits(userID uuid.UUID, categoryID *uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	query := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeDebit).
		Where("transaction_date >= ? AND transaction_date < ?", start, end)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var total decimal.NullDecimal
	if err := query.Select("SUM(amount)").Row().Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum debits: %w", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

type summaryRow struct {
	CategoryID   *uuid.UUID
	CategoryName *string
	Type         models.TransactionType
	Count        int64
	Total        decimal.Decimal
	Savings      decimal.NullDecimal
}

// Summarize aggregates transactions dated in [start, end] by category and type.
func (r *TransactionRepository) Summarize(userID uuid.UUID, start, end time.Time) (*models.TransactionSummary, error) {
	var rows []summaryRow
	err := r.db.Table("transactions AS t").
		Select("t.category_id AS category_id, c.name AS category_name, t.type AS type, "+
			"COUNT(*) AS count, SUM(t.amount) AS total, SUM(t.savings_allocated) AS savings").
		Joins("LEFT JOIN categories c ON c.id = t.category_id").
		Where("t.user_id = ?", userID).
		Where("t.transaction_date >= ? AND t.transaction_date <= ?", models.DateOnly(start), models.DateOnly(end)).
		Group("t.category_id, c.name, t.type").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	summary := &models.TransactionSummary{
		From:         models.DateOnly(start),
		To:           models.DateOnly(end),
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
		TotalSavings: decimal.Zero,
		ByCategory:   make([]models.CategorySummary, 0, len(rows)),
		GeneratedAt:  time.Now().UTC(),
	}

	for _, row := range rows {
		name := "Uncategorized"
		if row.CategoryName != nil {
			name = *row.CategoryName
		}
		summary.ByCategory = append(summary.ByCategory, models.CategorySummary{
			CategoryID:       row.CategoryID,
			CategoryName:     name,
			Type:             row.Type,
			TransactionCount: row.Count,
			TotalAmount:      row.Total,
		})

		switch row.Type {
		case models.TransactionTypeDebit:
			summary.TotalDebit = summary.TotalDebit.Add(row.Total)
			summary.DebitCount += row.Count
		case models.TransactionTypeCredit:
			summary.TotalCredit = summary.TotalCredit.Add(row.Total)
			summary.CreditCount += row.Count
			if row.Savings.Valid {
				summary.TotalSavings = summary.TotalSavings.Add(row.Savings.Decimal)
			}
		}
	}

	summary.Net = summary.TotalCredit.Sub(summary.TotalDebit)
	return summary, nil
}
