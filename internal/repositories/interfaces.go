package repositories

import (
	"time"

	"tracklytic/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateLoginState(user *models.User) error
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for revoked access tokens
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	IsBlacklisted(jti string) (bool, error)
	DeleteExpired() (int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}

// CategoryRepositoryInterface defines the contract for category persistence.
// Every lookup is scoped to the owning user.
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(userID, id uuid.UUID) (*models.Category, error)
	GetByTag(userID uuid.UUID, tag string) (*models.Category, error)
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
	Delete(userID, id uuid.UUID) error
}

// SpendingLimitRepositoryInterface covers general and per-category limits
type SpendingLimitRepositoryInterface interface {
	CreateGeneral(limit *models.GeneralSpendingLimit) error
	GetGeneralByUserID(userID uuid.UUID) (*models.GeneralSpendingLimit, error)
	GetGeneralByID(userID, id uuid.UUID) (*models.GeneralSpendingLimit, error)
	UpdateGeneral(limit *models.GeneralSpendingLimit) error

	CreateForCategory(limit *models.CategorySpendingLimit) error
	GetCategoryLimitByID(userID, id uuid.UUID) (*models.CategorySpendingLimit, error)
	GetCategoryLimitByCategory(userID, categoryID uuid.UUID) (*models.CategorySpendingLimit, error)
	ListCategoryLimits(userID uuid.UUID) ([]models.CategorySpendingLimit, error)
	UpdateCategoryLimit(limit *models.CategorySpendingLimit) error
}

type SavingPlanRepositoryInterface interface {
	Create(plan *models.SavingPlan) error
	GetByID(userID, id uuid.UUID) (*models.SavingPlan, error)
	GetByUserID(userID uuid.UUID) ([]models.SavingPlan, error)
	Update(plan *models.SavingPlan) error
	UpdateProgress(plan *models.SavingPlan) error
	ListOpen(afterID uuid.UUID, limit int) ([]models.SavingPlan, error)
}

// TransactionRepositoryInterface defines the contract for transaction persistence
type TransactionRepositoryInterface interface {
	Create(tx *models.Transaction) error
	// CreateWithEffects stores tx together with its optional saving plan progress
	// and recurring template in one database transaction.
	CreateWithEffects(tx *models.Transaction, plan *models.SavingPlan, recurring *models.RecurringTransaction) error
	GetByID(userID, id uuid.UUID) (*models.Transaction, error)
	List(filters models.TransactionFilters) ([]models.Transaction, error)
	GetRecent(userID uuid.UUID, limit int) ([]models.Transaction, error)
	// DeleteAndRefund removes tx and takes its savings allocation back out of plan.
	DeleteAndRefund(tx *models.Transaction, plan *models.SavingPlan) error
	SumDebits(userID uuid.UUID, categoryID *uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	Summarize(userID uuid.UUID, start, end time.Time) (*models.TransactionSummary, error)
}

type RecurringTransactionRepositoryInterface interface {
	Create(recurring *models.RecurringTransaction) error
	GetByID(userID, id uuid.UUID) (*models.RecurringTransaction, error)
	GetByUserID(userID uuid.UUID, activeOnly bool) ([]models.RecurringTransaction, error)
	Deactivate(userID, id uuid.UUID) error
	GetDue(now time.Time, afterID uuid.UUID, limit int) ([]models.RecurringTransaction, error)
	// RecordOccurrence inserts the generated transaction and persists the advanced template atomically.
	RecordOccurrence(recurring *models.RecurringTransaction, tx *models.Transaction) error
}
