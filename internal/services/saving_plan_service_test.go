package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/models"
	"tracklytic/internal/repositories"
	"tracklytic/internal/repositories/repository_mocks"
	"tracklytic/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SavingPlanServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	planRepo    *repository_mocks.MockSavingPlanRepositoryInterface
	audit       *service_mocks.MockAuditServiceInterface
	eventLogger *service_mocks.MockEventLoggerInterface
	service     SavingPlanServiceInterface
	userID      uuid.UUID
	today       time.Time
}

func TestSavingPlanServiceSuite(t *testing.T) {
	suite.Run(t, new(SavingPlanServiceTestSuite))
}

func (s *SavingPlanServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.planRepo = repository_mocks.NewMockSavingPlanRepositoryInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.eventLogger = service_mocks.NewMockEventLoggerInterface(s.ctrl)
	s.service = NewSavingPlanService(s.planRepo, s.audit, s.eventLogger, slog.Default())
	s.userID = uuid.New()
	s.today = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
}

func (s *SavingPlanServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SavingPlanServiceTestSuite) TestCreate_Success() {
	s.planRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(plan *models.SavingPlan) error {
		s.Equal("Laptop", plan.Name)
		s.Equal(models.SavingPlanStatusActive, plan.Status)
		s.True(plan.SavingsReachedAmount.IsZero())
		s.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), plan.Deadline)
		return nil
	})
	s.audit.EXPECT().Record(gomock.Any()).DoAndReturn(func(log *models.AuditLog) {
		s.Equal(models.AuditActionSavingPlanCreated, log.Action)
		s.Equal("2024-12-31", log.Metadata["deadline"])
	})

	plan, err := s.service.Create(s.userID, &dto.CreateSavingPlanRequest{
		Name:          "Laptop",
		SavingsAmount: decimal.NewFromInt(500000),
		Deadline:      "2024-12-31",
	})
	s.NoError(err)
	s.Equal(s.userID, plan.UserID)
}

func (s *SavingPlanServiceTestSuite) TestCreate_InvalidInput() {
	_, err := s.service.Create(s.userID, &dto.CreateSavingPlanRequest{Name: "Laptop", Deadline: "2024-12-31"})
	s.ErrorIs(err, apperrors.NewDomainError(apperrors.ValidationOutOfRange))

	_, err = s.service.Create(s.userID, &dto.CreateSavingPlanRequest{Name: "Laptop", SavingsAmount: decimal.NewFromInt(10), Deadline: "31/12/2024"})
	s.ErrorIs(err, apperrors.NewDomainError(apperrors.ValidationInvalidDate))
}

func (s *SavingPlanServiceTestSuite) TestCheckStatus_PersistsChangedPlans() {
	plans := []models.SavingPlan{
		{ID: uuid.New(), Name: "Expired", SavingsAmount: decimal.NewFromInt(100), Deadline: s.today.AddDate(0, 0, -1), Status: models.SavingPlanStatusActive},
		{ID: uuid.New(), Name: "Fine", SavingsAmount: decimal.NewFromInt(100), Deadline: s.today.AddDate(0, 1, 0), Status: models.SavingPlanStatusActive},
	}

	s.planRepo.EXPECT().GetByUserID(s.userID).Return(plans, nil)
	s.planRepo.EXPECT().UpdateProgress(gomock.Any()).DoAndReturn(func(plan *models.SavingPlan) error {
		s.Equal("Expired", plan.Name)
		s.Equal(models.SavingPlanStatusPastDeadline, plan.Status)
		return nil
	})

	result, err := s.service.CheckStatus(s.userID, s.today)
	s.NoError(err)
	s.Equal(models.SavingPlanStatusPastDeadline, result[0].Status)
	s.Equal(models.SavingPlanStatusActive, result[1].Status)
}

func (s *SavingPlanServiceTestSuite) TestRenew_Success() {
	plan := &models.SavingPlan{
		ID:                   uuid.New(),
		UserID:               s.userID,
		Name:                 "Laptop",
		SavingsAmount:        decimal.NewFromInt(1000),
		SavingsReachedAmount: decimal.NewFromInt(1000),
		Deadline:             s.today.AddDate(0, 0, -5),
		Status:               models.SavingPlanStatusCompleted,
	}

	s.planRepo.EXPECT().GetByID(s.userID, plan.ID).Return(plan, nil)
	s.planRepo.EXPECT().Update(plan).Return(nil)
	s.audit.EXPECT().Record(gomock.Any()).DoAndReturn(func(log *models.AuditLog) {
		s.Equal(models.AuditActionSavingPlanRenewed, log.Action)
		s.Equal("1000.00", log.Metadata["previous_amount"])
	})

	renewed, err := s.service.Renew(s.userID, plan.ID, &dto.RenewSavingPlanRequest{
		SavingsAmount: decimal.NewFromInt(3000),
		Deadline:      "2024-09-30",
	}, s.today)
	s.NoError(err)
	s.Equal(models.SavingPlanStatusActive, renewed.Status)
	s.True(renewed.SavingsAmount.Equal(decimal.NewFromInt(3000)))
}

func (s *SavingPlanServiceTestSuite) TestRenew_NotFound() {
	id := uuid.New()
	s.planRepo.EXPECT().GetByID(s.userID, id).Return(nil, repositories.ErrSavingPlanNotFound)

	_, err := s.service.Renew(s.userID, id, &dto.RenewSavingPlanRequest{SavingsAmount: decimal.NewFromInt(10)}, s.today)
	s.Require().Error(err)
	s.Equal("Saving Plan does not exist", err.Error())
}

func (s *SavingPlanServiceTestSuite) TestRenew_BelowSavedAmount() {
	plan := &models.SavingPlan{
		ID:                   uuid.New(),
		SavingsAmount:        decimal.NewFromInt(1000),
		SavingsReachedAmount: decimal.NewFromInt(700),
		Deadline:             s.today.AddDate(0, 1, 0),
		Status:               models.SavingPlanStatusActive,
	}
	s.planRepo.EXPECT().GetByID(s.userID, plan.ID).Return(plan, nil)

	_, err := s.service.Renew(s.userID, plan.ID, &dto.RenewSavingPlanRequest{SavingsAmount: decimal.NewFromInt(500)}, s.today)
	s.ErrorIs(err, apperrors.NewDomainError(apperrors.SavingAmountBelowSaved))
}

func (s *SavingPlanServiceTestSuite) TestRefreshAll_Pages() {
	first := make([]models.SavingPlan, refreshBatchSize)
	for i := range first {
		first[i] = models.SavingPlan{ID: uuid.New(), SavingsAmount: decimal.NewFromInt(100), Deadline: s.today.AddDate(0, 1, 0), Status: models.SavingPlanStatusActive}
	}
	completed := models.SavingPlan{
		ID:                   uuid.New(),
		SavingsAmount:        decimal.NewFromInt(100),
		SavingsReachedAmount: decimal.NewFromInt(100),
		Deadline:             s.today.AddDate(0, 1, 0),
		Status:               models.SavingPlanStatusActive,
	}
	expired := models.SavingPlan{ID: uuid.New(), SavingsAmount: decimal.NewFromInt(100), Deadline: s.today.AddDate(0, 0, -1), Status: models.SavingPlanStatusActive}

	gomock.InOrder(
		s.planRepo.EXPECT().ListOpen(uuid.Nil, refreshBatchSize).Return(first, nil),
		s.planRepo.EXPECT().ListOpen(first[len(first)-1].ID, refreshBatchSize).Return([]models.SavingPlan{completed, expired}, nil),
	)
	s.planRepo.EXPECT().UpdateProgress(gomock.Any()).Return(nil).Times(2)
	s.eventLogger.EXPECT().LogSavingGoalReached(gomock.Any(), gomock.Any()).Times(1)

	changed, err := s.service.RefreshAll(context.Background(), s.today)
	s.NoError(err)
	s.Equal(2, changed)
}

func (s *SavingPlanServiceTestSuite) TestRefreshAll_UpdateErrorDoesNotStopBatch() {
	plans := []models.SavingPlan{
		{ID: uuid.New(), SavingsAmount: decimal.NewFromInt(100), Deadline: s.today.AddDate(0, 0, -1), Status: models.SavingPlanStatusActive},
		{ID: uuid.New(), SavingsAmount: decimal.NewFromInt(100), Deadline: s.today.AddDate(0, 0, -1), Status: models.SavingPlanStatusActive},
	}

	s.planRepo.EXPECT().ListOpen(uuid.Nil, refreshBatchSize).Return(plans, nil)
	gomock.InOrder(
		s.planRepo.EXPECT().UpdateProgress(gomock.Any()).Return(errors.New("deadlock")),
		s.planRepo.EXPECT().UpdateProgress(gomock.Any()).Return(nil),
	)

	changed, err := s.service.RefreshAll(context.Background(), s.today)
	s.NoError(err)
	s.Equal(1, changed)
}

func (s *SavingPlanServiceTestSuite) TestRefreshAll_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.service.RefreshAll(ctx, s.today)
	s.ErrorIs(err, context.Canceled)
}
