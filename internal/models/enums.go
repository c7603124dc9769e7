package models

import (
	"time"
)

type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "Debit"
	TransactionTypeCredit TransactionType = "Credit"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeDebit || t == TransactionTypeCredit
}

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "Income"
	CategoryTypeExpense CategoryType = "Expense"
)

func (t CategoryType) IsValid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// BudgetPlan is the period a spending limit applies to.
type BudgetPlan string

const (
	BudgetPlanDaily   BudgetPlan = "Daily"
	BudgetPlanWeekly  BudgetPlan = "Weekly"
	BudgetPlanMonthly BudgetPlan = "Monthly"
)

func (p BudgetPlan) IsValid() bool {
	switch p {
	case BudgetPlanDaily, BudgetPlanWeekly, BudgetPlanMonthly:
		return true
	}
	return false
}

// Window returns the [start, end) range of the period containing now, in UTC.
// Weeks run Sunday through Saturday.
func (p BudgetPlan) Window(now time.Time) (time.Time, time.Time) {
	today := DateOnly(now)
	switch p {
	case BudgetPlanWeekly:
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return start, start.AddDate(0, 0, 7)
	case BudgetPlanMonthly:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	default:
		return today, today.AddDate(0, 0, 1)
	}
}

type SavingPlanStatus string

const (
	SavingPlanStatusActive       SavingPlanStatus = "Active"
	SavingPlanStatusPastDeadline SavingPlanStatus = "Past Deadline"
	SavingPlanStatusCompleted    SavingPlanStatus = "Completed"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
	FrequencyYearly  Frequency = "Yearly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Next returns the occurrence after from. Monthly and yearly steps keep
// anchorDay and clamp it to the last day of shorter months.
func (f Frequency) Next(from time.Time, anchorDay int) time.Time {
	switch f {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return clampDay(from.Year(), from.Month()+1, anchorDay, from)
	case FrequencyYearly:
		return clampDay(from.Year()+1, from.Month(), anchorDay, from)
	}
	return from
}

func clampDay(year int, month time.Month, day int, clock time.Time) time.Time {
	// normalise month overflow first, then clamp the day
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(), time.UTC)
}

// DateOnly returns the calendar day of t, read in t's own location, as a
// midnight UTC value. Convert t to the calendar timezone first.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClockIn returns a clock reading the current time in loc, the timezone that
// decides which calendar day "today" is. A nil loc means UTC.
func ClockIn(loc *time.Location) func() time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time { return time.Now().In(loc) }
}
