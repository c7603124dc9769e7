package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidBudgetPlan   = errors.New("budget plan must be Daily, Weekly or Monthly")
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")
)

// GeneralSpendingLimit caps all Debit spending of a user. One per user.
type GeneralSpendingLimit struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	BudgetPlan   BudgetPlan      `gorm:"type:varchar(10);not null" json:"budget_plan"`
	BudgetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"budget_amount"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

func (l *GeneralSpendingLimit) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	stampTimes(&l.CreatedAt, &l.UpdatedAt)
	return validateLimit(l.UserID, l.BudgetPlan, l.BudgetAmount)
}

func (l *GeneralSpendingLimit) BeforeUpdate(tx *gorm.DB) error {
	l.UpdatedAt = time.Now().UTC()
	return validateLimit(l.UserID, l.BudgetPlan, l.BudgetAmount)
}

func (l *GeneralSpendingLimit) TableName() string {
	return "general_spending_limits"
}

// CategorySpendingLimit caps Debit spending in one category.
type CategorySpendingLimit struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_category_limits_user_category" json:"user_id"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_category_limits_user_category" json:"category_id"`
	BudgetPlan   BudgetPlan      `gorm:"type:varchar(10);not null" json:"budget_plan"`
	BudgetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"budget_amount"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
}

func (l *CategorySpendingLimit) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	stampTimes(&l.CreatedAt, &l.UpdatedAt)
	if l.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}
	return validateLimit(l.UserID, l.BudgetPlan, l.BudgetAmount)
}

func (l *CategorySpendingLimit) BeforeUpdate(tx *gorm.DB) error {
	l.UpdatedAt = time.Now().UTC()
	return validateLimit(l.UserID, l.BudgetPlan, l.BudgetAmount)
}

func (l *CategorySpendingLimit) TableName() string {
	return "category_spending_limits"
}

// LimitStatus is the evaluated headroom of a limit in its current period.
type LimitStatus struct {
	LimitID      uuid.UUID       `json:"limit_id"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	BudgetPlan   BudgetPlan      `json:"budget_plan"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	Reached      bool            `json:"reached"`
	PeriodStart  time.Time       `json:"period_start"`
	PeriodEnd    time.Time       `json:"period_end"`
	Message      string          `json:"message"`
}

func validateLimit(userID uuid.UUID, plan BudgetPlan, amount decimal.Decimal) error {
	if userID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !plan.IsValid() {
		return ErrInvalidBudgetPlan
	}
	if !amount.IsPositive() {
		return ErrInvalidBudgetAmount
	}
	return nil
}

func stampTimes(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = now
	}
}
