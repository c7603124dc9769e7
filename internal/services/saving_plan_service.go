package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/models"
	"tracklytic/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const refreshBatchSize = 200

type savingPlanService struct {
	planRepo    repositories.SavingPlanRepositoryInterface
	audit       AuditServiceInterface
	eventLogger EventLoggerInterface
	logger      *slog.Logger
}

func NewSavingPlanService(
	planRepo repositories.SavingPlanRepositoryInterface,
	audit AuditServiceInterface,
	eventLogger EventLoggerInterface,
	logger *slog.Logger,
) SavingPlanServiceInterface {
	return &savingPlanService{
		planRepo:    planRepo,
		audit:       audit,
		eventLogger: eventLogger,
		logger:      logger,
	}
}

func (s *savingPlanService) Create(userID uuid.UUID, req *dto.CreateSavingPlanRequest) (*models.SavingPlan, error) {
	if !req.SavingsAmount.IsPositive() {
		return nil, apperrors.Domainf(apperrors.ValidationOutOfRange, "savings_amount must be greater than zero")
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return nil, err
	}

	plan := &models.SavingPlan{
		UserID:               userID,
		Name:                 req.Name,
		SavingsAmount:        req.SavingsAmount,
		SavingsReachedAmount: decimal.Zero,
		Deadline:             deadline,
		Status:               models.SavingPlanStatusActive,
	}

	if err := s.planRepo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create saving plan: %w", err)
	}

	s.audit.Record(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionSavingPlanCreated,
		Resource:   "saving_plan",
		ResourceID: plan.ID.String(),
		Metadata: map[string]interface{}{
			"savings_amount": plan.SavingsAmount.StringFixed(2),
			"deadline":       plan.Deadline.Format(time.DateOnly),
		},
	})
	return plan, nil
}

func (s *savingPlanService) List(userID uuid.UUID) ([]models.SavingPlan, error) {
	plans, err := s.planRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saving plans: %w", err)
	}
	return plans, nil
}

// CheckStatus recomputes the status of every plan of the user and persists the
// ones that changed.
func (s *savingPlanService) CheckStatus(userID uuid.UUID, today time.Time) ([]models.SavingPlan, error) {
	plans, err := s.planRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saving plans: %w", err)
	}

	for i := range plans {
		if !plans[i].RefreshStatus(today) {
			continue
		}
		if err := s.planRepo.UpdateProgress(&plans[i]); err != nil {
			return nil, fmt.Errorf("failed to update saving plan status: %w", err)
		}
	}

	return plans, nil
}

func (s *savingPlanService) Renew(userID, planID uuid.UUID, req *dto.RenewSavingPlanRequest, today time.Time) (*models.SavingPlan, error) {
	plan, err := s.planRepo.GetByID(userID, planID)
	if err != nil {
		if errors.Is(err, repositories.ErrSavingPlanNotFound) {
			return nil, apperrors.NewDomainError(apperrors.SavingPlanNotFound)
		}
		return nil, fmt.Errorf("failed to get saving plan: %w", err)
	}

	if !req.SavingsAmount.IsPositive() {
		return nil, apperrors.Domainf(apperrors.ValidationOutOfRange, "savings_amount must be greater than zero")
	}

	var deadline *time.Time
	if req.Deadline != "" {
		d, err := parseDate(req.Deadline)
		if err != nil {
			return nil, err
		}
		deadline = &d
	}

	previous := plan.SavingsAmount
	if err := RenewSavingPlan(plan, req.SavingsAmount, deadline, today); err != nil {
		return nil, err
	}

	if err := s.planRepo.Update(plan); err != nil {
		if errors.Is(err, repositories.ErrSavingPlanNotFound) {
			return nil, apperrors.NewDomainError(apperrors.SavingPlanNotFound)
		}
		return nil, fmt.Errorf("failed to renew saving plan: %w", err)
	}

	s.audit.Record(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionSavingPlanRenewed,
		Resource:   "saving_plan",
		ResourceID: plan.ID.String(),
		Metadata: map[string]interface{}{
			"previous_amount": previous.StringFixed(2),
			"savings_amount":  plan.SavingsAmount.StringFixed(2),
			"status":          string(plan.Status),
		},
	})
	return plan, nil
}

// RefreshAll walks every open plan in id order and persists status changes.
// It returns how many plans changed.
func (s *savingPlanService) RefreshAll(ctx context.Context, today time.Time) (int, error) {
	changed := 0
	after := uuid.Nil

	for {
		if err := ctx.Err(); err != nil {
			return changed, err
		}

		plans, err := s.planRepo.ListOpen(after, refreshBatchSize)
		if err != nil {
			return changed, fmt.Errorf("failed to list open saving plans: %w", err)
		}
		if len(plans) == 0 {
			return changed, nil
		}

		for i := range plans {
			plan := &plans[i]
			if !plan.RefreshStatus(today) {
				continue
			}
			if err := s.planRepo.UpdateProgress(plan); err != nil {
				s.logger.ErrorContext(ctx, "failed to refresh saving plan",
					"error", err,
					"saving_plan_id", plan.ID)
				continue
			}
			changed++
			if plan.Status == models.SavingPlanStatusCompleted {
				s.eventLogger.LogSavingGoalReached(ctx, plan)
			}
		}

		after = plans[len(plans)-1].ID
		if len(plans) < refreshBatchSize {
			return changed, nil
		}
	}
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, apperrors.Domainf(apperrors.ValidationInvalidDate, "%q is not a valid date, use YYYY-MM-DD", value)
	}
	return t, nil
}
