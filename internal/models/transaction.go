package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidTransactionType = errors.New("transaction type must be Debit or Credit")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrInvalidPercentage      = errors.New("savings percentage must be between 0 and 100")
)

// Transaction is a single Debit or Credit entry. SavingsAllocated holds the part
// of a Credit moved into the linked saving plan.
type Transaction struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID                 uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date" json:"user_id"`
	PartyName              string          `gorm:"type:varchar(255);not null" json:"party_name"`
	Amount                 decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type                   TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	CategoryID             *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Notes                  string          `gorm:"type:text" json:"notes,omitempty"`
	Receipt                string          `gorm:"type:varchar(500)" json:"receipt,omitempty"`
	TransactionDate        time.Time       `gorm:"type:date;not null;index:idx_transactions_user_date" json:"transaction_date"`
	AddSavings             bool            `gorm:"not null;default:false" json:"add_savings"`
	SavingsPercentage      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"savings_percentage"`
	SavingPlanID           *uuid.UUID      `gorm:"type:uuid;index" json:"savings,omitempty"`
	SavingsNote            string          `gorm:"type:varchar(255)" json:"savings_note,omitempty"`
	SavingsAllocated       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"savings_allocated"`
	Recurring              bool            `gorm:"not null;default:false" json:"recurring"`
	RecurringTransactionID *uuid.UUID      `gorm:"type:uuid;index" json:"recurring_transaction_id,omitempty"`
	CreatedAt              time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt              time.Time       `gorm:"not null" json:"updated_at"`

	Category   *Category   `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	SavingPlan *SavingPlan `gorm:"foreignKey:SavingPlanID;constraint:OnDelete:SET NULL" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.TransactionDate.IsZero() {
		t.TransactionDate = time.Now().UTC()
	}
	t.TransactionDate = DateOnly(t.TransactionDate)
	stampTimes(&t.CreatedAt, &t.UpdatedAt)
	return t.Validate()
}

func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if t.PartyName == "" {
		return errors.New("party name is required")
	}
	if !t.Type.IsValid() {
		return ErrInvalidTransactionType
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if t.SavingsPercentage.IsNegative() || t.SavingsPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidPercentage
	}
	return nil
}

func (t *Transaction) IsDebit() bool {
	return t.Type == TransactionTypeDebit
}

func (t *Transaction) IsCredit() bool {
	return t.Type == TransactionTypeCredit
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// TransactionFilters narrows a transaction listing.
type TransactionFilters struct {
	UserID     uuid.UUID
	Type       TransactionType
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Cursor     *Cursor
}

// Cursor marks the last row of a page in (created_at, id) descending order.
type Cursor struct {
	Timestamp time.Time `json:"timestamp"`
	ID        uuid.UUID `json:"id"`
}

// CategorySummary aggregates transactions in one category.
type CategorySummary struct {
	CategoryID       *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName     string          `json:"category_name"`
	Type             TransactionType `json:"type"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

// TransactionSummary totals a user's transactions over a date range.
type TransactionSummary struct {
	From         time.Time         `json:"from"`
	To           time.Time         `json:"to"`
	TotalDebit   decimal.Decimal   `json:"total_debit"`
	TotalCredit  decimal.Decimal   `json:"total_credit"`
	TotalSavings decimal.Decimal   `json:"total_savings"`
	Net          decimal.Decimal   `json:"net"`
	DebitCount   int64             `json:"debit_count"`
	CreditCount  int64             `json:"credit_count"`
	ByCategory   []CategorySummary `json:"by_category"`
	GeneratedAt  time.Time         `json:"generated_at"`
}
