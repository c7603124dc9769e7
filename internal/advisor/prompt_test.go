package advisor

import (
	"strings"
	"testing"
	"time"

	"tracklytic/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	food := &models.Category{ID: uuid.New(), Name: "eating out"}

	prompt := BuildPrompt(PromptInput{
		Username: "ada",
		Transactions: []models.Transaction{
			{
				TransactionDate: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
				Category:        food,
				Type:            models.TransactionTypeDebit,
				Amount:          decimal.RequireFromString("4500"),
			},
			{
				TransactionDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				Type:            models.TransactionTypeCredit,
				Amount:          decimal.RequireFromString("250000.5"),
			},
		},
		GeneralLimit: &models.GeneralSpendingLimit{BudgetPlan: models.BudgetPlanMonthly, BudgetAmount: decimal.NewFromInt(100000)},
		CategoryLimits: []models.CategorySpendingLimit{
			{Category: food, BudgetPlan: models.BudgetPlanWeekly, BudgetAmount: decimal.NewFromInt(10000)},
		},
		SavingPlans: []models.SavingPlan{
			{Name: "Rent", SavingsAmount: decimal.NewFromInt(500000), SavingsReachedAmount: decimal.NewFromInt(120000), Status: models.SavingPlanStatusActive},
		},
	})

	assert.True(t, strings.HasPrefix(prompt, "You are a financial advisor AI.\n\nUser: ada\n"))
	assert.Contains(t, prompt, "2024-06-14 | Eating Out | Debit | ₦4500.00\n")
	assert.Contains(t, prompt, "2024-06-01 | Uncategorized | Credit | ₦250000.50\n")
	assert.Contains(t, prompt, "General Limit: ₦100000.00 (Monthly)\n")
	assert.Contains(t, prompt, "Eating Out: ₦10000.00 (Weekly)\n")
	assert.Contains(t, prompt, "Rent - Target: ₦500000.00, Reached: ₦120000.00, Status: Active\n")
	assert.Contains(t, prompt, "5. Keep advice clear and encouraging.\n")
}

func TestBuildPrompt_Empty(t *testing.T) {
	prompt := BuildPrompt(PromptInput{Username: "ada"})

	assert.Contains(t, prompt, "No transactions recorded")
	assert.Contains(t, prompt, "No limits set")
	assert.Contains(t, prompt, "No saving plans set")
}
