package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/events"
	"tracklytic/internal/models"
	"tracklytic/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	msgRecurringCreated = "Recurring transaction created successfully"
)

type transactionService struct {
	txRepo       repositories.TransactionRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	planRepo     repositories.SavingPlanRepositoryInterface
	budget       BudgetServiceInterface
	publisher    EventPublisherInterface
	metrics      MetricsRecorderInterface
	eventLogger  EventLoggerInterface
	logger       *slog.Logger
	clock        func() time.Time
}

func NewTransactionService(
	txRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	planRepo repositories.SavingPlanRepositoryInterface,
	budget BudgetServiceInterface,
	publisher EventPublisherInterface,
	metrics MetricsRecorderInterface,
	eventLogger EventLoggerInterface,
	logger *slog.Logger,
	clock func() time.Time,
) TransactionServiceInterface {
	if clock == nil {
		clock = time.Now
	}
	return &transactionService{
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		planRepo:     planRepo,
		budget:       budget,
		publisher:    publisher,
		metrics:      metrics,
		eventLogger:  eventLogger,
		logger:       logger,
		clock:        clock,
	}
}

func (s *transactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResult, error) {
	now := s.clock()

	tx, err := s.buildTransaction(userID, req, now)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		if _, err := s.categoryRepo.GetByID(userID, *req.Category); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.NewDomainError(apperrors.CategoryNotFound)
			}
			return nil, fmt.Errorf("failed to get category: %w", err)
		}
	}

	var plan *models.SavingPlan
	if req.Savings != nil {
		plan, err = s.planRepo.GetByID(userID, *req.Savings)
		if err != nil {
			if errors.Is(err, repositories.ErrSavingPlanNotFound) {
				return nil, savingPlanMissing()
			}
			return nil, fmt.Errorf("failed to get saving plan: %w", err)
		}
	}
	if tx.AddSavings && tx.IsCredit() && plan == nil {
		return nil, savingPlanMissing()
	}

	result := &dto.TransactionResult{Transaction: tx}

	var planToSave *models.SavingPlan
	if plan != nil && plan.RefreshStatus(now) {
		planToSave = plan
	}
	if plan != nil {
		tx.SavingsNote = DetermineSavingsNote(plan, tx.Type, tx.AddSavings, tx.SavingsPercentage)
	}

	outcome := ProcessSavingsFromIncome(tx, plan, now)
	tx.SavingsAllocated = outcome.Allocated
	result.SavingsMessage = &outcome.Message
	if outcome.PlanChanged {
		planToSave = plan
	}

	recurring, err := buildRecurring(tx, req)
	if err != nil {
		return nil, err
	}
	if recurring != nil {
		msg := msgRecurringCreated
		result.RecurringMessage = &msg
	}

	if err := s.txRepo.CreateWithEffects(tx, planToSave, recurring); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.recordCreated(ctx, tx, plan, outcome)
	s.evaluateLimits(ctx, userID, tx, now, result)

	s.publish(ctx, events.New(events.TypeTransactionCreated, userID, tx))
	return result, nil
}

func (s *transactionService) buildTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest, now time.Time) (*models.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewDomainError(apperrors.TransactionInvalidAmount)
	}

	txType := models.TransactionType(req.Type)
	if !txType.IsValid() {
		return nil, apperrors.NewDomainError(apperrors.TransactionInvalidType)
	}

	if req.SavingsPercentage.IsNegative() || req.SavingsPercentage.GreaterThan(hundred) {
		return nil, apperrors.NewDomainError(apperrors.SavingInvalidPercentage)
	}

	date := models.DateOnly(now)
	if req.TransactionDate != "" {
		parsed, err := parseDate(req.TransactionDate)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &models.Transaction{
		UserID:            userID,
		PartyName:         req.PartyName,
		Amount:            req.Amount,
		Type:              txType,
		CategoryID:        req.Category,
		Notes:             req.Notes,
		TransactionDate:   date,
		AddSavings:        req.AddSavings,
		SavingsPercentage: req.SavingsPercentage,
		SavingPlanID:      req.Savings,
		SavingsAllocated:  decimal.Zero,
		Recurring:         req.Recurring,
		Receipt:           req.Receipt,
	}, nil
}

// buildRecurring returns the template created alongside tx, or nil when the
// transaction does not repeat. The first occurrence is tx itself.
func buildRecurring(tx *models.Transaction, req *dto.CreateTransactionRequest) (*models.RecurringTransaction, error) {
	if !req.Recurring {
		return nil, nil
	}

	frequency := models.Frequency(req.Frequency)
	if !frequency.IsValid() {
		return nil, apperrors.NewDomainError(apperrors.RecurringInvalidFrequency)
	}

	anchor := tx.TransactionDate.Day()
	next := frequency.Next(tx.TransactionDate, anchor)
	if req.NextDueDate != "" {
		parsed, err := parseDate(req.NextDueDate)
		if err != nil {
			return nil, err
		}
		next = parsed
	}

	recurring := &models.RecurringTransaction{
		UserID:      tx.UserID,
		CategoryID:  tx.CategoryID,
		PartyName:   tx.PartyName,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Notes:       tx.Notes,
		Frequency:   frequency,
		AnchorDay:   anchor,
		NextDueDate: next,
		Active:      true,
	}

	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		if end.Before(tx.TransactionDate) {
			return nil, apperrors.Domainf(apperrors.ValidationInvalidDate, "end_date cannot be before the transaction date")
		}
		recurring.EndDate = &end
		if next.After(end) {
			recurring.Active = false
		}
	}

	return recurring, nil
}

func (s *transactionService) recordCreated(ctx context.Context, tx *models.Transaction, plan *models.SavingPlan, outcome SavingsOutcome) {
	s.eventLogger.LogTransactionCreated(ctx, tx)
	s.metrics.IncrementCounter(MetricTransactionCreated, map[string]string{"type": string(tx.Type)})

	if plan == nil || !outcome.Allocated.IsPositive() {
		return
	}

	s.eventLogger.LogSavingsAllocated(ctx, plan.ID, outcome.Allocated.StringFixed(2), outcome.Overflow.StringFixed(2), plan.Status)
	s.metrics.RecordGauge(MetricSavingsAllocated, outcome.Allocated.InexactFloat64(), nil)

	if plan.Status == models.SavingPlanStatusCompleted {
		s.eventLogger.LogSavingGoalReached(ctx, plan)
		s.metrics.IncrementCounter(MetricSavingGoalReached, nil)
		s.publish(ctx, events.New(events.TypeSavingGoalReached, plan.UserID, plan))
	}
}

// evaluateLimits fills the limit fields of result. A failure here does not undo
// the stored transaction, so it is logged rather than returned.
func (s *transactionService) evaluateLimits(ctx context.Context, userID uuid.UUID, tx *models.Transaction, now time.Time, result *dto.TransactionResult) {
	status, message, err := s.budget.GeneralStatus(userID, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to evaluate general limit", "error", err, "user_id", userID)
		return
	}
	result.LimitStatus = status
	result.LimitMessage = message

	if !tx.IsDebit() {
		return
	}
	if status != nil && status.Reached {
		s.limitReached(ctx, userID, status, "general")
	}

	if tx.CategoryID == nil {
		return
	}
	categoryStatus, err := s.budget.CategoryStatus(userID, *tx.CategoryID, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to evaluate category limit", "error", err, "user_id", userID)
		return
	}
	result.CategoryLimit = categoryStatus
	if categoryStatus != nil && categoryStatus.Reached {
		s.limitReached(ctx, userID, categoryStatus, "category")
	}
}

func (s *transactionService) limitReached(ctx context.Context, userID uuid.UUID, status *models.LimitStatus, scope string) {
	s.eventLogger.LogLimitReached(ctx, userID, status)
	s.metrics.IncrementCounter(MetricLimitReached, map[string]string{
		"scope": scope,
		"plan":  string(status.BudgetPlan),
	})
	s.publish(ctx, events.New(events.TypeLimitReached, userID, status))
}

func (s *transactionService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.eventLogger.LogPublishFailed(ctx, event.Type, err.Error())
		s.metrics.IncrementCounter(MetricEventPublishFailed, map[string]string{"event_type": event.Type})
	}
}

func (s *transactionService) List(userID uuid.UUID, query *dto.TransactionQuery) (*dto.ListTransactionsResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	filters := models.TransactionFilters{
		UserID: userID,
		Type:   models.TransactionType(query.Type),
		Limit:  limit + 1,
	}

	if query.CategoryID != "" {
		id, err := uuid.Parse(query.CategoryID)
		if err != nil {
			return nil, apperrors.Domainf(apperrors.ValidationInvalidFormat, "category_id must be a UUID")
		}
		filters.CategoryID = &id
	}
	if query.From != "" {
		from, err := parseDate(query.From)
		if err != nil {
			return nil, err
		}
		filters.StartDate = &from
	}
	if query.To != "" {
		to, err := parseDate(query.To)
		if err != nil {
			return nil, err
		}
		filters.EndDate = &to
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return nil, apperrors.Domainf(apperrors.ValidationInvalidDate, "from must not be after to")
	}
	if query.Cursor != "" {
		cursor, err := DecodeCursor(query.Cursor)
		if err != nil {
			return nil, apperrors.NewDomainError(apperrors.TransactionInvalidCursor)
		}
		filters.Cursor = cursor
	}

	transactions, err := s.txRepo.List(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	response := &dto.ListTransactionsResponse{
		Transactions: transactions,
		Pagination:   dto.PaginationInfo{Limit: limit},
	}

	if len(transactions) > limit {
		response.Transactions = transactions[:limit]
		last := response.Transactions[limit-1]
		response.Pagination.HasMore = true
		response.Pagination.NextCursor = EncodeCursor(models.Cursor{Timestamp: last.CreatedAt, ID: last.ID})
	}
	if response.Transactions == nil {
		response.Transactions = []models.Transaction{}
	}

	return response, nil
}

func (s *transactionService) Get(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	tx, err := s.txRepo.GetByID(userID, transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.NewDomainError(apperrors.TransactionNotFound)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// Delete removes a transaction. A Credit that funded a saving plan gives its
// allocation back in the same database transaction.
func (s *transactionService) Delete(userID, transactionID uuid.UUID) error {
	tx, err := s.Get(userID, transactionID)
	if err != nil {
		return err
	}

	var plan *models.SavingPlan
	if tx.SavingPlanID != nil && tx.SavingsAllocated.IsPositive() {
		plan, err = s.planRepo.GetByID(userID, *tx.SavingPlanID)
		switch {
		case errors.Is(err, repositories.ErrSavingPlanNotFound):
			plan = nil
		case err != nil:
			return fmt.Errorf("failed to get saving plan: %w", err)
		default:
			RefundSavings(plan, tx.SavingsAllocated, s.clock())
		}
	}

	if err := s.txRepo.DeleteAndRefund(tx, plan); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return apperrors.NewDomainError(apperrors.TransactionNotFound)
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.metrics.IncrementCounter(MetricTransactionDeleted, map[string]string{"type": string(tx.Type)})
	s.publish(context.Background(), events.New(events.TypeTransactionDeleted, userID, map[string]string{
		"id": tx.ID.String(),
	}))
	return nil
}

func (s *transactionService) Summary(userID uuid.UUID, from, to time.Time) (*models.TransactionSummary, error) {
	if from.After(to) {
		return nil, apperrors.Domainf(apperrors.ValidationInvalidDate, "from must not be after to")
	}

	summary, err := s.txRepo.Summarize(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	return summary, nil
}

func savingPlanMissing() error {
	return apperrors.Domainf(apperrors.SavingPlanNotFound, "Saving plan does not exist")
}

// EncodeCursor encodes the position of the last row of a page.
func EncodeCursor(c models.Cursor) string {
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeCursor reverses EncodeCursor.
func DecodeCursor(cursor string) (*models.Cursor, error) {
	data, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	var c models.Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid cursor format: %w", err)
	}
	if c.ID == uuid.Nil || c.Timestamp.IsZero() {
		return nil, errors.New("incomplete cursor")
	}
	return &c, nil
}
