package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidSavingsAmount = errors.New("savings amount must be positive")

// SavingPlan tracks progress towards a savings target before a deadline.
type SavingPlan struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID               uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name                 string           `gorm:"type:varchar(100);not null" json:"name"`
	SavingsAmount        decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"savings_amount"`
	SavingsReachedAmount decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"savings_reached_amount"`
	SavingsReached       bool             `gorm:"not null;default:false" json:"savings_reached"`
	Deadline             time.Time        `gorm:"type:date;not null" json:"deadline"`
	Status               SavingPlanStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt            time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"not null" json:"updated_at"`
}

func (p *SavingPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = SavingPlanStatusActive
	}
	p.Deadline = DateOnly(p.Deadline)
	stampTimes(&p.CreatedAt, &p.UpdatedAt)
	return p.Validate()
}

func (p *SavingPlan) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now().UTC()
	return p.Validate()
}

func (p *SavingPlan) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if p.Name == "" {
		return errors.New("saving plan name is required")
	}
	if !p.SavingsAmount.IsPositive() {
		return ErrInvalidSavingsAmount
	}
	if p.SavingsReachedAmount.IsNegative() {
		return errors.New("savings reached amount cannot be negative")
	}
	if p.Deadline.IsZero() {
		return errors.New("deadline is required")
	}
	return nil
}

// Remaining is the amount still needed to reach the target, never negative.
func (p *SavingPlan) Remaining() decimal.Decimal {
	rem := p.SavingsAmount.Sub(p.SavingsReachedAmount)
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}

// RefreshStatus derives the status from the deadline and progress as of today.
// It reports whether anything changed.
func (p *SavingPlan) RefreshStatus(today time.Time) bool {
	prevStatus, prevReached := p.Status, p.SavingsReached
	today = DateOnly(today)

	switch {
	case DateOnly(p.Deadline).Before(today) && p.Status != SavingPlanStatusCompleted:
		p.Status = SavingPlanStatusPastDeadline
		p.SavingsReached = false
	case p.SavingsReachedAmount.Equal(p.SavingsAmount):
		p.Status = SavingPlanStatusCompleted
		p.SavingsReached = true
	case p.SavingsReachedAmount.LessThan(p.SavingsAmount):
		p.Status = SavingPlanStatusActive
		p.SavingsReached = false
	}

	return prevStatus != p.Status || prevReached != p.SavingsReached
}

func (p *SavingPlan) TableName() string {
	return "saving_plans"
}
