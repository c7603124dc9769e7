package services

import (
	"context"
	"log/slog"
	"time"

	"tracklytic/internal/models"

	"github.com/google/uuid"
)

type EventLogger struct {
	logger *slog.Logger
}

func NewEventLogger(logger *slog.Logger) EventLoggerInterface {
	return &EventLogger{
		logger: logger,
	}
}

func (el *EventLogger) LogTransactionCreated(ctx context.Context, tx *models.Transaction) {
	attrs := []slog.Attr{
		slog.String("event_type", "transaction_created"),
		slog.String("transaction_id", tx.ID.String()),
		slog.String("user_id", tx.UserID.String()),
		slog.String("type", string(tx.Type)),
		slog.String("amount", tx.Amount.StringFixed(2)),
		slog.Bool("recurring", tx.Recurring),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}
	if tx.SavingPlanID != nil {
		attrs = append(attrs, slog.String("saving_plan_id", tx.SavingPlanID.String()))
	}

	el.logger.LogAttrs(ctx, slog.LevelInfo, "transaction created", attrs...)
}

func (el *EventLogger) LogSavingsAllocated(ctx context.Context, planID uuid.UUID, allocated, overflow string, status models.SavingPlanStatus) {
	el.logger.InfoContext(ctx, "savings allocated",
		slog.String("event_type", "savings_allocated"),
		slog.String("saving_plan_id", planID.String()),
		slog.String("allocated", allocated),
		slog.String("overflow", overflow),
		slog.String("status", string(status)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogSavingGoalReached(ctx context.Context, plan *models.SavingPlan) {
	el.logger.InfoContext(ctx, "saving goal reached",
		slog.String("event_type", "saving_goal_reached"),
		slog.String("saving_plan_id", plan.ID.String()),
		slog.String("user_id", plan.UserID.String()),
		slog.String("target", plan.SavingsAmount.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogLimitReached(ctx context.Context, userID uuid.UUID, status *models.LimitStatus) {
	scope := "general"
	if status.CategoryID != nil {
		scope = "category"
	}

	el.logger.WarnContext(ctx, "spending limit reached",
		slog.String("event_type", "limit_reached"),
		slog.String("user_id", userID.String()),
		slog.String("limit_id", status.LimitID.String()),
		slog.String("scope", scope),
		slog.String("budget_plan", string(status.BudgetPlan)),
		slog.String("budget_amount", status.BudgetAmount.StringFixed(2)),
		slog.String("spent", status.Spent.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogRecurringRun(ctx context.Context, processed, failed int, durationMs int64) {
	level := slog.LevelInfo
	if failed > 0 {
		level = slog.LevelWarn
	}

	el.logger.LogAttrs(ctx, level, "recurring run finished",
		slog.String("event_type", "recurring_run"),
		slog.Int("processed", processed),
		slog.Int("failed", failed),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

func (el *EventLogger) LogReceiptScanned(ctx context.Context, userID uuid.UUID, bank string, durationMs int64, created bool) {
	el.logger.InfoContext(ctx, "receipt scanned",
		slog.String("event_type", "receipt_scanned"),
		slog.String("user_id", userID.String()),
		slog.String("bank", bank),
		slog.Int64("duration_ms", durationMs),
		slog.Bool("transaction_created", created),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	el.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogPublishFailed(ctx context.Context, eventType string, errorMsg string) {
	el.logger.ErrorContext(ctx, "event publish failed",
		slog.String("event_type", eventType),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

type correlationKey struct{}

// WithCorrelationID tags ctx so domain events logged further down carry the
// request's trace id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}
