package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidFrequency = errors.New("frequency must be Daily, Weekly, Monthly or Yearly")

// RecurringTransaction is a template materialised into a Transaction on every due date.
type RecurringTransaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid" json:"category_id,omitempty"`
	PartyName   string          `gorm:"type:varchar(255);not null" json:"party_name"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	Frequency   Frequency       `gorm:"type:varchar(10);not null" json:"frequency"`
	AnchorDay   int             `gorm:"not null;default:1" json:"-"`
	NextDueDate time.Time       `gorm:"type:date;not null;index:idx_recurring_due" json:"next_due_date"`
	EndDate     *time.Time      `gorm:"type:date" json:"end_date,omitempty"`
	Active      bool            `gorm:"not null;index:idx_recurring_due" json:"active"`
	LastRunAt   *time.Time      `json:"last_run_at,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

func (r *RecurringTransaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.NextDueDate = DateOnly(r.NextDueDate)
	if r.AnchorDay == 0 {
		r.AnchorDay = r.NextDueDate.Day()
	}
	stampTimes(&r.CreatedAt, &r.UpdatedAt)
	return r.Validate()
}

func (r *RecurringTransaction) Validate() error {
	if r.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if r.PartyName == "" {
		return errors.New("party name is required")
	}
	if !r.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !r.Type.IsValid() {
		return ErrInvalidTransactionType
	}
	if !r.Frequency.IsValid() {
		return ErrInvalidFrequency
	}
	if r.NextDueDate.IsZero() {
		return errors.New("next due date is required")
	}
	return nil
}

// IsDue reports whether the template should run at now.
func (r *RecurringTransaction) IsDue(now time.Time) bool {
	if !r.Active {
		return false
	}
	return !DateOnly(r.NextDueDate).After(DateOnly(now))
}

// Advance moves NextDueDate one step and deactivates the template once it runs past EndDate.
func (r *RecurringTransaction) Advance(now time.Time) {
	r.LastRunAt = &now
	r.NextDueDate = r.Frequency.Next(DateOnly(r.NextDueDate), r.AnchorDay)
	if r.EndDate != nil && r.NextDueDate.After(DateOnly(*r.EndDate)) {
		r.Active = false
	}
}

func (r *RecurringTransaction) TableName() string {
	return "recurring_transactions"
}
