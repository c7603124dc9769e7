package dto

import (
	"io"

	"tracklytic/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest creates a user category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,not_blank,max=100"`
	Type string `json:"type" validate:"required,oneof=Income Expense"`
}

// GeneralBudgetRequest creates or edits the general spending limit.
// On edit every field is optional.
type GeneralBudgetRequest struct {
	BudgetPlan   string           `json:"budget_plan" validate:"omitempty,oneof=Daily Weekly Monthly"`
	BudgetAmount *decimal.Decimal `json:"budget_amount" validate:"omitempty,money"`
}

// CategoryBudgetRequest creates or edits a spending limit for one category
type CategoryBudgetRequest struct {
	Category     *uuid.UUID       `json:"category"`
	BudgetPlan   string           `json:"budget_plan" validate:"omitempty,oneof=Daily Weekly Monthly"`
	BudgetAmount *decimal.Decimal `json:"budget_amount" validate:"omitempty,money"`
}

// BudgetListResponse groups the general and category limits of a user
type BudgetListResponse struct {
	General    *models.GeneralSpendingLimit   `json:"general"`
	Categories []models.CategorySpendingLimit `json:"categories"`
}

// BudgetStatusResponse reports the headroom left on every limit
type BudgetStatusResponse struct {
	General    *models.LimitStatus  `json:"general,omitempty"`
	Message    string               `json:"message"`
	Categories []models.LimitStatus `json:"categories"`
}

// CreateSavingPlanRequest creates a saving plan
type CreateSavingPlanRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	SavingsAmount decimal.Decimal `json:"savings_amount" validate:"money"`
	Deadline      string          `json:"deadline" validate:"required,datetime=2006-01-02"`
}

// RenewSavingPlanRequest changes the target and optionally the deadline of a plan
type RenewSavingPlanRequest struct {
	SavingsAmount decimal.Decimal `json:"savings_amount" validate:"money"`
	Deadline      string          `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

// CreateTransactionRequest contains the fields of a new transaction. Savings and
// recurrence settings are optional.
type CreateTransactionRequest struct {
	PartyName         string          `json:"party_name" validate:"required,not_blank,max=255"`
	Amount            decimal.Decimal `json:"amount" validate:"money"`
	Type              string          `json:"type" validate:"required,oneof=Debit Credit"`
	Category          *uuid.UUID      `json:"category"`
	Notes             string          `json:"notes" validate:"max=2000"`
	TransactionDate   string          `json:"transaction_date" validate:"omitempty,datetime=2006-01-02"`
	AddSavings        bool            `json:"add_savings"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage"`
	Savings           *uuid.UUID      `json:"savings"`
	Recurring         bool            `json:"recurring"`
	Frequency         string          `json:"frequency" validate:"omitempty,oneof=Daily Weekly Monthly Yearly"`
	NextDueDate       string          `json:"next_due_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate           string          `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	// Receipt is the stored receipt path, set by the receipt scanner
	Receipt string `json:"-"`
}

// TransactionQuery holds list filters and pagination parameters
type TransactionQuery struct {
	Type       string `query:"type" validate:"omitempty,oneof=Debit Credit"`
	CategoryID string `query:"category_id" validate:"omitempty,uuid"`
	From       string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Cursor     string `query:"cursor"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// SummaryQuery bounds a transaction summary
type SummaryQuery struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
	Limit      int    `json:"limit"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   PaginationInfo       `json:"pagination"`
}

// TransactionCreatedResponse is the body returned after adding a transaction
type TransactionCreatedResponse struct {
	Status           string              `json:"status"`
	Message          string              `json:"message"`
	Data             *models.Transaction `json:"data"`
	Limit            string              `json:"limit"`
	SavingsMessage   *string             `json:"savings_message"`
	RecurringMessage *string             `json:"recurring_message"`
}

// TransactionResult is what creating a transaction produced besides the row itself
type TransactionResult struct {
	Transaction      *models.Transaction
	LimitStatus      *models.LimitStatus
	LimitMessage     string
	CategoryLimit    *models.LimitStatus
	SavingsMessage   *string
	RecurringMessage *string
}

// CreateRecurringRequest creates a standalone recurring template
type CreateRecurringRequest struct {
	PartyName   string          `json:"party_name" validate:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" validate:"money"`
	Type        string          `json:"type" validate:"required,oneof=Debit Credit"`
	Category    *uuid.UUID      `json:"category"`
	Notes       string          `json:"notes" validate:"max=2000"`
	Frequency   string          `json:"frequency" validate:"required,oneof=Daily Weekly Monthly Yearly"`
	NextDueDate string          `json:"next_due_date" validate:"required,datetime=2006-01-02"`
	EndDate     string          `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// ReceiptUpload is a receipt file received from a multipart form
type ReceiptUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
	// Create stores the parsed transaction as well
	Create bool
}

// ReceiptScanResponse is returned by the receipt upload endpoint
type ReceiptScanResponse struct {
	Extraction        interface{}         `json:"extraction"`
	Transaction       *models.Transaction `json:"transaction,omitempty"`
	SuggestedCategory *models.Category    `json:"suggested_category,omitempty"`
	Created           bool                `json:"created"`
}

// InsightResponse carries the advisor text
type InsightResponse struct {
	Advice           string `json:"advice"`
	Model            string `json:"model"`
	TransactionCount int    `json:"transaction_count"`
}

// SeedResponse reports what the development seeder inserted
type SeedResponse struct {
	Categories   int `json:"categories"`
	Transactions int `json:"transactions"`
	SavingPlans  int `json:"saving_plans"`
	Budgets      int `json:"budgets"`
}
