package services

import (
	"context"
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
)

const (
	recurringBatchSize = 100
	// caps catch-up for a template that was not processed for a long time
	maxOccurrencesPerRun = 366
)

type recurringService struct {
	recurringRepo repositories.RecurringTransactionRepositoryInterface
	categoryRepo  repositories.CategoryRepositoryInterface
	publisher     EventPublisherInterface
	metrics       MetricsRecorderInterface
	eventLogger   EventLoggerInterface
	logger        *slog.Logger
}

func NewRecurringService(
	recurringRepo repositories.RecurringTransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	publisher EventPublisherInterface,
	metrics MetricsRecorderInterface,
	eventLogger EventLoggerInterface,
	logger *slog.Logger,
) RecurringServiceInterface {
	return &recurringService{
		recurringRepo: recurringRepo,
		categoryRepo:  categoryRepo,
		publisher:     publisher,
		metrics:       metrics,
		eventLogger:   eventLogger,
		logger:        logger,
	}
}

func (s *recurringService) Create(userID uuid.UUID, req *dto.CreateRecurringRequest) (*models.RecurringTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewDomainError(apperrors.TransactionInvalidAmount)
	}
	frequency := models.Frequency(req.Frequency)
	if !frequency.IsValid() {
		return nil, apperrors.NewDomainError(apperrors.RecurringInvalidFrequency)
	}
	txType := models.TransactionType(req.Type)
	if !txType.IsValid() {
		return nil, apperrors.NewDomainError(apperrors.TransactionInvalidType)
	}

	if req.Category != nil {
		if _, err := s.categoryRepo.GetByID(userID, *req.Category); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.NewDomainError(apperrors.CategoryNotFound)
			}
			return nil, fmt.Errorf("failed to get category: %w", err)
		}
	}

	next, err := parseDate(req.NextDueDate)
	if err != nil {
		return nil, err
	}

	recurring := &models.RecurringTransaction{
		UserID:      userID,
		CategoryID:  req.Category,
		PartyName:   req.PartyName,
		Amount:      req.Amount,
		Type:        txType,
		Notes:       req.Notes,
		Frequency:   frequency,
		AnchorDay:   next.Day(),
		NextDueDate: next,
		Active:      true,
	}

	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		if end.Before(next) {
			return nil, apperrors.Domainf(apperrors.ValidationInvalidDate, "end_date cannot be before next_due_date")
		}
		recurring.EndDate = &end
	}

	if err := s.recurringRepo.Create(recurring); err != nil {
		return nil, fmt.Errorf("failed to create recurring transaction: %w", err)
	}
	return recurring, nil
}

func (s *recurringService) List(userID uuid.UUID, activeOnly bool) ([]models.RecurringTransaction, error) {
	items, err := s.recurringRepo.GetByUserID(userID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}
	return items, nil
}

func (s *recurringService) Deactivate(userID, recurringID uuid.UUID) error {
	if err := s.recurringRepo.Deactivate(userID, recurringID); err != nil {
		if errors.Is(err, repositories.ErrRecurringNotFound) {
			return apperrors.NewDomainError(apperrors.RecurringNotFound)
		}
		return fmt.Errorf("failed to deactivate recurring transaction: %w", err)
	}
	return nil
}

// ProcessDue materialises every occurrence that is due at now, catching up on
// missed ones. Templates are visited once per run in id order, and a failing one
// is logged and skipped.
// It returns the number of transactions created.
func (s *recurringService) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	start := time.Now()
	processed, failed := 0, 0
	after := uuid.Nil

	defer func() {
		elapsed := time.Since(start)
		s.metrics.RecordProcessingTime(MetricRecurringRun, elapsed)
		s.eventLogger.LogRecurringRun(ctx, processed, failed, elapsed.Milliseconds())
	}()

	for {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		due, err := s.recurringRepo.GetDue(now, after, recurringBatchSize)
		if err != nil {
			return processed, fmt.Errorf("failed to load due recurring transactions: %w", err)
		}

		for i := range due {
			recurring := &due[i]
			n, err := s.runTemplate(ctx, recurring, now)
			processed += n
			if err != nil {
				failed++
				s.metrics.IncrementCounter(MetricRecurringFailed, nil)
				s.logger.ErrorContext(ctx, "failed to process recurring transaction",
					"error", err,
					"recurring_id", recurring.ID,
					"user_id", recurring.UserID)
			}
		}

		if len(due) < recurringBatchSize {
			return processed, nil
		}
		after = due[len(due)-1].ID
	}
}

func (s *recurringService) runTemplate(ctx context.Context, recurring *models.RecurringTransaction, now time.Time) (int, error) {
	created := 0
	for recurring.IsDue(now) && created < maxOccurrencesPerRun {
		tx := occurrenceOf(recurring)
		recurring.Advance(now)

		if err := s.recurringRepo.RecordOccurrence(recurring, tx); err != nil {
			return created, err
		}
		created++

		s.metrics.IncrementCounter(MetricRecurringProcessed, nil)
		s.metrics.IncrementCounter(MetricTransactionCreated, map[string]string{"type": string(tx.Type)})
		s.eventLogger.LogTransactionCreated(ctx, tx)
		if err := s.publisher.Publish(ctx, events.New(events.TypeTransactionCreated, tx.UserID, tx)); err != nil {
			s.eventLogger.LogPublishFailed(ctx, events.TypeTransactionCreated, err.Error())
		}
	}
	return created, nil
}

func occurrenceOf(recurring *models.RecurringTransaction) *models.Transaction {
	recurringID := recurring.ID
	return &models.Transaction{
		UserID:                 recurring.UserID,
		PartyName:              recurring.PartyName,
		Amount:                 recurring.Amount,
		Type:                   recurring.Type,
		CategoryID:             recurring.CategoryID,
		Notes:                  recurring.Notes,
		TransactionDate:        models.DateOnly(recurring.NextDueDate),
		Recurring:              true,
		RecurringTransactionID: &recurringID,
	}
}
