package services

import (
	"fmt"
	"time"

	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/models"

	"github.com/shopspring/decimal"
)

const (
	noteGoalReached  = "Saving Goal Reached so no amount will be deducted"
	notePastDeadline = "Saving plan is Past the deadline, So no Percentage deducted"
	noteNoSavings    = "You are making an Expense or add savings is False"

	msgPastDeadlineRenew = "Saving plan is Past the deadline, Renew to continue saving"
)

var hundred = decimal.NewFromInt(100)

// SavingsOutcome describes what happened to a plan when a transaction was recorded.
type SavingsOutcome struct {
	Allocated decimal.Decimal
	Overflow  decimal.Decimal
	Message   string
	// PlanChanged is true when the plan must be written back.
	PlanChanged bool
}

// DetermineSavingsNote returns the note stored on a transaction linked to plan.
func DetermineSavingsNote(plan *models.SavingPlan, txType models.TransactionType, addSavings bool, pct decimal.Decimal) string {
	savingCredit := txType == models.TransactionTypeCredit && addSavings

	switch {
	case savingCredit && (plan.Status == models.SavingPlanStatusCompleted ||
		plan.SavingsReachedAmount.GreaterThanOrEqual(plan.SavingsAmount)):
		return noteGoalReached
	case savingCredit && plan.Status == models.SavingPlanStatusPastDeadline:
		return notePastDeadline
	case !savingCredit:
		return noteNoSavings
	}
	return fmt.Sprintf("%s%% has been deducted from this Credit Transaction", pct.String())
}

// ProcessSavingsFromIncome moves the configured percentage of a Credit into plan.
// The plan never exceeds its target: the part above it is reported as overflow and
// stays with the transaction.
func ProcessSavingsFromIncome(tx *models.Transaction, plan *models.SavingPlan, today time.Time) SavingsOutcome {
	if !tx.IsCredit() || !tx.AddSavings || plan == nil {
		return SavingsOutcome{Message: noteNoSavings}
	}

	changed := plan.RefreshStatus(today)

	switch plan.Status {
	case models.SavingPlanStatusPastDeadline:
		return SavingsOutcome{Message: msgPastDeadlineRenew, PlanChanged: changed}
	case models.SavingPlanStatusCompleted:
		return SavingsOutcome{Message: fmt.Sprintf("%s Saving Plan goal reached", plan.Name), PlanChanged: changed}
	}

	allocation := tx.Amount.Mul(tx.SavingsPercentage).Div(hundred).Round(2)
	if !allocation.IsPositive() {
		return SavingsOutcome{
			Message:     fmt.Sprintf("%s saving goal remaining %s to be completed", plan.Name, plan.Remaining().StringFixed(2)),
			PlanChanged: changed,
		}
	}

	reached := plan.SavingsReachedAmount.Add(allocation)
	outcome := SavingsOutcome{PlanChanged: true}

	switch reached.Cmp(plan.SavingsAmount) {
	case 1:
		outcome.Overflow = reached.Sub(plan.SavingsAmount)
		outcome.Allocated = allocation.Sub(outcome.Overflow)
		plan.SavingsReachedAmount = plan.SavingsAmount
		outcome.Message = fmt.Sprintf("%s saving goal reached and %s added back to the transaction amount",
			plan.Name, outcome.Overflow.StringFixed(2))
	case 0:
		outcome.Allocated = allocation
		plan.SavingsReachedAmount = reached
		outcome.Message = fmt.Sprintf("%s saving goal reached", plan.Name)
	default:
		outcome.Allocated = allocation
		plan.SavingsReachedAmount = reached
		outcome.Message = fmt.Sprintf("%s saving goal remaining %s to be completed",
			plan.Name, plan.Remaining().StringFixed(2))
	}

	plan.RefreshStatus(today)
	return outcome
}

// RefundSavings takes a deleted transaction's allocation back out of plan.
func RefundSavings(plan *models.SavingPlan, allocated decimal.Decimal, today time.Time) {
	reached := plan.SavingsReachedAmount.Sub(allocated)
	if reached.IsNegative() {
		reached = decimal.Zero
	}
	plan.SavingsReachedAmount = reached
	if plan.Status == models.SavingPlanStatusCompleted && reached.LessThan(plan.SavingsAmount) {
		plan.Status = models.SavingPlanStatusActive
	}
	plan.RefreshStatus(today)
}

// RenewSavingPlan sets a new target, and optionally a new deadline, on plan.
func RenewSavingPlan(plan *models.SavingPlan, newAmount decimal.Decimal, newDeadline *time.Time, today time.Time) error {
	if newAmount.LessThan(plan.SavingsReachedAmount) {
		return apperrors.NewDomainError(apperrors.SavingAmountBelowSaved)
	}

	plan.SavingsAmount = newAmount
	if newDeadline != nil {
		plan.Deadline = models.DateOnly(*newDeadline)
	}

	if newAmount.Equal(plan.SavingsReachedAmount) {
		plan.SavingsReached = true
		plan.Status = models.SavingPlanStatusCompleted
		return nil
	}

	plan.SavingsReached = false
	if models.DateOnly(plan.Deadline).Before(models.DateOnly(today)) {
		plan.Status = models.SavingPlanStatusPastDeadline
	} else {
		plan.Status = models.SavingPlanStatusActive
	}
	return nil
}
