package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tracklytic/internal/advisor"
	"tracklytic/internal/config"
	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/repositories"

	"github.com/google/uuid"
)

const insightBreakerService = "gemini"

type insightService struct {
	advisor     AdvisorClientInterface
	userRepo    repositories.UserRepositoryInterface
	txRepo      repositories.TransactionRepositoryInterface
	limitRepo   repositories.SpendingLimitRepositoryInterface
	planRepo    repositories.SavingPlanRepositoryInterface
	breaker     CircuitBreakerInterface
	metrics     MetricsRecorderInterface
	eventLogger EventLoggerInterface
	cfg         config.InsightsConfig
	logger      *slog.Logger
}

// NewInsightService builds the advisor service. A nil client disables it.
func NewInsightService(
	client AdvisorClientInterface,
	userRepo repositories.UserRepositoryInterface,
	txRepo repositories.TransactionRepositoryInterface,
	limitRepo repositories.SpendingLimitRepositoryInterface,
	planRepo repositories.SavingPlanRepositoryInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	eventLogger EventLoggerInterface,
	cfg config.InsightsConfig,
	logger *slog.Logger,
) InsightServiceInterface {
	return &insightService{
		advisor:     client,
		userRepo:    userRepo,
		txRepo:      txRepo,
		limitRepo:   limitRepo,
		planRepo:    planRepo,
		breaker:     breaker,
		metrics:     metrics,
		eventLogger: eventLogger,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *insightService) Generate(ctx context.Context, userID uuid.UUID) (*dto.InsightResponse, error) {
	if s.advisor == nil {
		s.countRequest("disabled")
		return nil, apperrors.NewDomainError(apperrors.InsightNotConfigured)
	}

	var open bool
	s.trackBreaker(ctx, func() { open = s.breaker.IsOpen() })
	if open {
		s.countRequest("rejected")
		return nil, apperrors.NewDomainError(apperrors.InsightUnavailable)
	}

	input, err := s.loadPromptInput(userID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	advice, err := s.advisor.GenerateAdvice(ctx, advisor.BuildPrompt(*input))
	s.metrics.RecordProcessingTime(MetricInsightLatency, time.Since(start))
	if err != nil {
		s.trackBreaker(ctx, s.breaker.RecordFailure)
		s.countRequest("failed")
		s.logger.ErrorContext(ctx, "failed to generate insights", "error", err, "user_id", userID, "model", s.advisor.Model())
		return nil, apperrors.NewDomainError(apperrors.InsightUnavailable)
	}
	s.trackBreaker(ctx, s.breaker.RecordSuccess)
	s.countRequest("success")

	return &dto.InsightResponse{
		Advice:           advice,
		Model:            s.advisor.Model(),
		TransactionCount: len(input.Transactions),
	}, nil
}

func (s *insightService) loadPromptInput(userID uuid.UUID) (*advisor.PromptInput, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	transactions, err := s.txRepo.GetRecent(userID, s.cfg.TransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}

	general, err := s.limitRepo.GetGeneralByUserID(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrGeneralLimitNotFound) {
			return nil, fmt.Errorf("failed to get general limit: %w", err)
		}
		general = nil
	}

	categoryLimits, err := s.limitRepo.ListCategoryLimits(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list category limits: %w", err)
	}

	plans, err := s.planRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saving plans: %w", err)
	}

	return &advisor.PromptInput{
		Username:       user.Username,
		Transactions:   transactions,
		GeneralLimit:   general,
		CategoryLimits: categoryLimits,
		SavingPlans:    plans,
	}, nil
}

// trackBreaker runs fn and reports any state change it caused.
func (s *insightService) trackBreaker(ctx context.Context, fn func()) {
	before := s.breaker.GetState()
	fn()
	after := s.breaker.GetState()
	if before == after {
		return
	}

	s.eventLogger.LogCircuitBreakerStateChange(ctx, insightBreakerService, before.String(), after.String())
	s.metrics.RecordGauge(MetricCircuitBreakerState, float64(after), map[string]string{"service": insightBreakerService})
}

func (s *insightService) countRequest(status string) {
	s.metrics.IncrementCounter(MetricInsightRequest, map[string]string{"status": status})
}
