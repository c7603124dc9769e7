package services

import (
	"fmt"
	"time"

	"tracklytic/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EvaluateLimit compares spent in the current window against a budget.
func EvaluateLimit(limitID uuid.UUID, plan models.BudgetPlan, budget, spent decimal.Decimal, now time.Time) *models.LimitStatus {
	start, end := plan.Window(now)
	remaining := budget.Sub(spent)

	status := &models.LimitStatus{
		LimitID:      limitID,
		BudgetPlan:   plan,
		BudgetAmount: budget,
		Spent:        spent,
		Remaining:    remaining,
		PeriodStart:  start,
		PeriodEnd:    end,
	}

	if !remaining.IsPositive() {
		status.Reached = true
		status.Remaining = decimal.Zero
		status.Message = fmt.Sprintf("Your %s Limit has been Reached", plan)
		return status
	}

	status.Message = fmt.Sprintf("%s remaining to reach your %s Limit", remaining.StringFixed(2), plan)
	return status
}
