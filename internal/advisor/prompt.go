package advisor

import (
	"fmt"
	"strings"
	"time"

	"tracklytic/internal/models"
)

// PromptInput is the user data the advisor is shown.
type PromptInput struct {
	Username       string
	Transactions   []models.Transaction
	GeneralLimit   *models.GeneralSpendingLimit
	CategoryLimits []models.CategorySpendingLimit
	SavingPlans    []models.SavingPlan
}

const uncategorized = "Uncategorized"

var tasks = []string{
	"Summarize their spending behavior.",
	"Highlight any overspending or risky categories.",
	"Suggest at least 3 personalized tips to improve money management.",
	"If possible, suggest how they can reach their saving goals faster.",
	"Keep advice clear and encouraging.",
}

// BuildPrompt renders in as the plain text prompt sent to the model.
func BuildPrompt(in PromptInput) string {
	var b strings.Builder

	b.WriteString("You are a financial advisor AI.\n\n")
	fmt.Fprintf(&b, "User: %s\n\n", in.Username)

	b.WriteString("Recent Transactions:\n")
	if len(in.Transactions) == 0 {
		b.WriteString("No transactions recorded\n")
	}
	for _, tx := range in.Transactions {
		category := uncategorized
		if tx.Category != nil {
			category = models.DisplayName(tx.Category.Name)
		}
		fmt.Fprintf(&b, "%s | %s | %s | ₦%s\n", tx.TransactionDate.Format(time.DateOnly), category, tx.Type, tx.Amount.StringFixed(2))
	}

	b.WriteString("\nSpending Limits:\n")
	limits := limitLines(in.GeneralLimit, in.CategoryLimits)
	if len(limits) == 0 {
		b.WriteString("No limits set\n")
	}
	for _, line := range limits {
		b.WriteString(line + "\n")
	}

	b.WriteString("\nSaving Plans:\n")
	if len(in.SavingPlans) == 0 {
		b.WriteString("No saving plans set\n")
	}
	for _, plan := range in.SavingPlans {
		fmt.Fprintf(&b, "%s - Target: ₦%s, Reached: ₦%s, Status: %s\n",
			plan.Name, plan.SavingsAmount.StringFixed(2), plan.SavingsReachedAmount.StringFixed(2), plan.Status)
	}

	b.WriteString("\nTask:\n")
	for i, task := range tasks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, task)
	}

	return b.String()
}

func limitLines(general *models.GeneralSpendingLimit, categories []models.CategorySpendingLimit) []string {
	var lines []string
	if general != nil {
		lines = append(lines, fmt.Sprintf("General Limit: ₦%s (%s)", general.BudgetAmount.StringFixed(2), general.BudgetPlan))
	}
	for _, limit := range categories {
		name := uncategorized
		if limit.Category != nil {
			name = models.DisplayName(limit.Category.Name)
		}
		lines = append(lines, fmt.Sprintf("%s: ₦%s (%s)", name, limit.BudgetAmount.StringFixed(2), limit.BudgetPlan))
	}
	return lines
}
