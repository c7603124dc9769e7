package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBudgetPlan_Window(t *testing.T) {
	// Wednesday
	now := time.Date(2024, 12, 18, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		plan  BudgetPlan
		start time.Time
		end   time.Time
	}{
		{BudgetPlanDaily, day(2024, 12, 18), day(2024, 12, 19)},
		{BudgetPlanWeekly, day(2024, 12, 15), day(2024, 12, 22)},
		{BudgetPlanMonthly, day(2024, 12, 1), day(2025, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(string(tt.plan), func(t *testing.T) {
			start, end := tt.plan.Window(now)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestBudgetPlan_WeekStartsOnSunday(t *testing.T) {
	start, end := BudgetPlanWeekly.Window(day(2024, 12, 15))
	assert.Equal(t, day(2024, 12, 15), start)
	assert.Equal(t, day(2024, 12, 22), end)

	start, _ = BudgetPlanWeekly.Window(day(2024, 12, 21))
	assert.Equal(t, day(2024, 12, 15), start)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, TransactionTypeDebit.IsValid())
	assert.False(t, TransactionType("debit").IsValid())
	assert.True(t, CategoryTypeIncome.IsValid())
	assert.False(t, CategoryType("Savings").IsValid())
	assert.True(t, BudgetPlanMonthly.IsValid())
	assert.False(t, BudgetPlan("Yearly").IsValid())
	assert.True(t, FrequencyYearly.IsValid())
	assert.False(t, Frequency("Hourly").IsValid())
}

func TestFrequency_Next(t *testing.T) {
	tests := []struct {
		name   string
		freq   Frequency
		from   time.Time
		anchor int
		want   time.Time
	}{
		{"daily", FrequencyDaily, day(2024, 12, 31), 31, day(2025, 1, 1)},
		{"weekly", FrequencyWeekly, day(2024, 12, 28), 28, day(2025, 1, 4)},
		{"monthly clamps to february end", FrequencyMonthly, day(2025, 1, 31), 31, day(2025, 2, 28)},
		{"monthly restores anchor", FrequencyMonthly, day(2025, 2, 28), 31, day(2025, 3, 31)},
		{"monthly over year end", FrequencyMonthly, day(2024, 12, 15), 15, day(2025, 1, 15)},
		{"yearly leap day", FrequencyYearly, day(2024, 2, 29), 29, day(2025, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.freq.Next(tt.from, tt.anchor))
		})
	}
}

func TestCategoryTag(t *testing.T) {
	assert.Equal(t, "food and drinks", CategoryTag("  Food   and DRINKS "))
	assert.Equal(t, "Food And Drinks", DisplayName("food and   drinks"))
}

func TestDateOnly_UsesLocationOfTime(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)
	instant := time.Date(2024, 6, 30, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, day(2024, 6, 30), DateOnly(instant))
	assert.Equal(t, day(2024, 7, 1), DateOnly(instant.In(lagos)))
	assert.Equal(t, time.UTC, DateOnly(instant.In(lagos)).Location())
}

func TestClockIn(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)

	assert.Equal(t, lagos, ClockIn(lagos)().Location())
	assert.Equal(t, time.UTC, ClockIn(nil)().Location())
}

func TestSavingPlan_RefreshStatusAgreesAcrossTimezones(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)
	instant := time.Date(2024, 6, 30, 23, 30, 0, 0, time.UTC)

	p := plan("1000", "200", "2024-06-30", SavingPlanStatusActive)
	p.RefreshStatus(DateOnly(instant.In(lagos)))
	assert.Equal(t, SavingPlanStatusPastDeadline, p.Status)

	p = plan("1000", "200", "2024-06-30", SavingPlanStatusActive)
	p.RefreshStatus(instant.In(lagos))
	assert.Equal(t, SavingPlanStatusPastDeadline, p.Status)
}
