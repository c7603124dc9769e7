package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/events"
	"tracklytic/internal/models"
	"tracklytic/internal/repositories"
	"tracklytic/internal/repositories/repository_mocks"
	"tracklytic/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	txRepo       *repository_mocks.MockTransactionRepositoryInterface
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	planRepo     *repository_mocks.MockSavingPlanRepositoryInterface
	budget       *service_mocks.MockBudgetServiceInterface
	publisher    *service_mocks.MockEventPublisherInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	eventLogger  *service_mocks.MockEventLoggerInterface
	service      *transactionService
	userID       uuid.UUID
	now          time.Time
	ctx          context.Context
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.txRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.planRepo = repository_mocks.NewMockSavingPlanRepositoryInterface(s.ctrl)
	s.budget = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.publisher = service_mocks.NewMockEventPublisherInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.eventLogger = service_mocks.NewMockEventLoggerInterface(s.ctrl)

	s.service = NewTransactionService(
		s.txRepo, s.categoryRepo, s.planRepo, s.budget,
		s.publisher, s.metrics, s.eventLogger, slog.Default(),
		func() time.Time { return s.now },
	).(*transactionService)

	s.now = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	s.userID = uuid.New()
	s.ctx = context.Background()

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.eventLogger.EXPECT().LogTransactionCreated(gomock.Any(), gomock.Any()).AnyTimes()
	s.eventLogger.EXPECT().LogSavingsAllocated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionServiceTestSuite) expectPublished(eventTypes ...string) {
	for _, eventType := range eventTypes {
		expected := eventType
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event events.Event) error {
			s.Equal(expected, event.Type)
			return nil
		})
	}
}

func (s *TransactionServiceTestSuite) noGeneralLimit() {
	s.budget.EXPECT().GeneralStatus(s.userID, s.now).Return(nil, "User does not have a general spending limit", nil)
}

func (s *TransactionServiceTestSuite) TestCreate_SimpleDebit() {
	req := &dto.CreateTransactionRequest{
		PartyName: gofakeit.Company(),
		Amount:    decimal.NewFromInt(2500),
		Type:      "Debit",
	}

	s.txRepo.EXPECT().CreateWithEffects(gomock.Any(), nil, nil).DoAndReturn(
		func(tx *models.Transaction, _ *models.SavingPlan, _ *models.RecurringTransaction) error {
			s.Equal(models.DateOnly(s.now), tx.TransactionDate)
			s.Equal(models.TransactionTypeDebit, tx.Type)
			return nil
		})
	s.noGeneralLimit()
	s.expectPublished(events.TypeTransactionCreated)

	result, err := s.service.Create(s.ctx, s.userID, req)
	s.NoError(err)
	s.Equal("User does not have a general spending limit", result.LimitMessage)
	s.Require().NotNil(result.SavingsMessage)
	s.Equal("You are making an Expense or add savings is False", *result.SavingsMessage)
	s.Nil(result.RecurringMessage)
}

func (s *TransactionServiceTestSuite) TestCreate_ValidationErrors() {
	cases := []struct {
		req  *dto.CreateTransactionRequest
		code apperrors.ErrorCode
	}{
		{&dto.CreateTransactionRequest{PartyName: "x", Amount: decimal.Zero, Type: "Debit"}, apperrors.TransactionInvalidAmount},
		{&dto.CreateTransactionRequest{PartyName: "x", Amount: decimal.NewFromInt(1), Type: "Transfer"}, apperrors.TransactionInvalidType},
		{&dto.CreateTransactionRequest{PartyName: "x", Amount: decimal.NewFromInt(1), Type: "Credit", SavingsPercentage: decimal.NewFromInt(101)}, apperrors.SavingInvalidPercentage},
		{&dto.CreateTransactionRequest{PartyName: "x", Amount: decimal.NewFromInt(1), Type: "Debit", TransactionDate: "15-06-2024"}, apperrors.ValidationInvalidDate},
	}

	for _, tc := range cases {
		_, err := s.service.Create(s.ctx, s.userID, tc.req)
		s.ErrorIs(err, apperrors.NewDomainError(tc.code))
	}
}

func (s *TransactionServiceTestSuite) TestCreate_UnknownCategory() {
	categoryID := uuid.New()
	s.categoryRepo.EXPECT().GetByID(s.userID, categoryID).Return(nil, repositories.ErrCategoryNotFound)

	_, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName: "Shoprite",
		Amount:    decimal.NewFromInt(100),
		Type:      "Debit",
		Category:  &categoryID,
	})
	s.Require().Error(err)
	s.Equal("Category does not exist", err.Error())
}

func (s *TransactionServiceTestSuite) TestCreate_AddSavingsWithoutPlan() {
	_, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName:         "Employer",
		Amount:            decimal.NewFromInt(100000),
		Type:              "Credit",
		AddSavings:        true,
		SavingsPercentage: decimal.NewFromInt(10),
	})
	s.Require().Error(err)
	s.Equal("Saving plan does not exist", err.Error())
}

func (s *TransactionServiceTestSuite) TestCreate_UnknownPlan() {
	planID := uuid.New()
	s.planRepo.EXPECT().GetByID(s.userID, planID).Return(nil, repositories.ErrSavingPlanNotFound)

	_, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName: "Employer",
		Amount:    decimal.NewFromInt(100000),
		Type:      "Credit",
		Savings:   &planID,
	})
	s.ErrorIs(err, apperrors.NewDomainError(apperrors.SavingPlanNotFound))
}

func (s *TransactionServiceTestSuite) TestCreate_CreditFundsPlan() {
	plan := &models.SavingPlan{
		ID:                   uuid.New(),
		UserID:               s.userID,
		Name:                 "Laptop",
		SavingsAmount:        decimal.NewFromInt(50000),
		SavingsReachedAmount: decimal.NewFromInt(10000),
		Deadline:             s.now.AddDate(0, 3, 0),
		Status:               models.SavingPlanStatusActive,
	}

	s.planRepo.EXPECT().GetByID(s.userID, plan.ID).Return(plan, nil)
	s.txRepo.EXPECT().CreateWithEffects(gomock.Any(), plan, nil).DoAndReturn(
		func(tx *models.Transaction, p *models.SavingPlan, _ *models.RecurringTransaction) error {
			s.Equal("10000.00", tx.SavingsAllocated.StringFixed(2))
			s.Equal("10% has been deducted from this Credit Transaction", tx.SavingsNote)
			s.Equal("20000.00", p.SavingsReachedAmount.StringFixed(2))
			return nil
		})
	s.noGeneralLimit()
	s.expectPublished(events.TypeTransactionCreated)

	result, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName:         "Employer",
		Amount:            decimal.NewFromInt(100000),
		Type:              "Credit",
		AddSavings:        true,
		SavingsPercentage: decimal.NewFromInt(10),
		Savings:           &plan.ID,
	})
	s.NoError(err)
	s.Require().NotNil(result.SavingsMessage)
	s.Equal("Laptop saving goal remaining 30000.00 to be completed", *result.SavingsMessage)
}

func (s *TransactionServiceTestSuite) TestCreate_CreditToExpiredActivePlan() {
	plan := &models.SavingPlan{
		ID:                   uuid.New(),
		UserID:               s.userID,
		Name:                 "Laptop",
		SavingsAmount:        decimal.NewFromInt(50000),
		SavingsReachedAmount: decimal.NewFromInt(10000),
		Deadline:             models.DateOnly(s.now).AddDate(0, 0, -1),
		Status:               models.SavingPlanStatusActive,
	}

	s.planRepo.EXPECT().GetByID(s.userID, plan.ID).Return(plan, nil)
	s.txRepo.EXPECT().CreateWithEffects(gomock.Any(), plan, nil).DoAndReturn(
		func(tx *models.Transaction, p *models.SavingPlan, _ *models.RecurringTransaction) error {
			s.True(tx.SavingsAllocated.IsZero())
			s.Equal("Saving plan is Past the deadline, So no Percentage deducted", tx.SavingsNote)
			s.Equal(models.SavingPlanStatusPastDeadline, p.Status)
			s.Equal("10000.00", p.SavingsReachedAmount.StringFixed(2))
			return nil
		})
	s.noGeneralLimit()
	s.expectPublished(events.TypeTransactionCreated)

	result, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName:         "Employer",
		Amount:            decimal.NewFromInt(100000),
		Type:              "Credit",
		AddSavings:        true,
		SavingsPercentage: decimal.NewFromInt(10),
		Savings:           &plan.ID,
	})
	s.NoError(err)
	s.Require().NotNil(result.SavingsMessage)
	s.Equal("Saving plan is Past the deadline, Renew to continue saving", *result.SavingsMessage)
}

func (s *TransactionServiceTestSuite) TestCreate_CreditWithoutSavingsReportsMessage() {
	s.txRepo.EXPECT().CreateWithEffects(gomock.Any(), nil, nil).Return(nil)
	s.noGeneralLimit()
	s.expectPublished(events.TypeTransactionCreated)

	result, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName: "Employer",
		Amount:    decimal.NewFromInt(100000),
		Type:      "Credit",
	})
	s.Require().NoError(err)
	s.Require().NotNil(result.SavingsMessage)
	s.Equal("You are making an Expense or add savings is False", *result.SavingsMessage)
	s.True(result.Transaction.SavingsAllocated.IsZero())
}

func (s *TransactionServiceTestSuite) TestCreate_CreditCompletesPlan() {
	plan := &models.SavingPlan{
		ID:                   uuid.New(),
		UserID:               s.userID,
		Name:                 "Rent",
		SavingsAmount:        decimal.NewFromInt(1000),
		SavingsReachedAmount: decimal.NewFromInt(900),
		Deadline:             s.now.AddDate(0, 1, 0),
		Status:               models.SavingPlanStatusActive,
	}

	s.planRepo.EXPECT().GetByID(s.userID, plan.ID).Return(plan, nil)
	s.txRepo.EXPECT().CreateWithEffects(gomock.Any(), plan, nil).Return(nil)
	s.eventLogger.EXPECT().LogSavingGoalReached(gomock.Any(), plan)
	s.noGeneralLimit()
	s.expectPublished(events.TypeSavingGoalReached, events.TypeTransactionCreated)

	result, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName:         "Employer",
		Amount:            decimal.NewFromInt(1000),
		Type:              "Credit",
		AddSavings:        true,
		SavingsPercentage: decimal.NewFromInt(50),
		Savings:           &plan.ID,
	})
	s.NoError(err)
	s.Equal("100.00", result.Transaction.SavingsAllocated.StringFixed(2))
	s.Equal("Rent saving goal reached and 400.00 added back to the transaction amount", *result.SavingsMessage)
	s.Equal(models.SavingPlanStatusCompleted, plan.Status)
}

func (s *TransactionServiceTestSuite) TestCreate_DebitReachesLimits() {
	categoryID := uuid.New()
	general := &models.LimitStatus{BudgetPlan: models.BudgetPlanDaily, Reached: true, Message: "Your Daily Limit has been Reached"}
	category := &models.LimitStatus{BudgetPlan: models.BudgetPlanWeekly, Reached: true, CategoryID: &categoryID}

	s.categoryRepo.EXPECT().GetByID(s.userID, categoryID).Return(&models.Category{ID: categoryID}, nil)
	s.txRepo.EXPECT().CreateWithEffects(gomock.Any(), nil, nil).Return(nil)
	s.budget.EXPECT().GeneralStatus(s.userID, s.now).Return(general, general.Message, nil)
	s.budget.EXPECT().CategoryStatus(s.userID, categoryID, s.now).Return(category, nil)
	s.eventLogger.EXPECT().LogLimitReached(gomock.Any(), s.userID, general)
	s.eventLogger.EXPECT().LogLimitReached(gomock.Any(), s.userID, category)
	s.expectPublished(events.TypeLimitReached, events.TypeLimitReached, events.TypeTransactionCreated)

	result, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName: "Shoprite",
		Amount:    decimal.NewFromInt(5000),
		Type:      "Debit",
		Category:  &categoryID,
	})
	s.NoError(err)
	s.Equal("Your Daily Limit has been Reached", result.LimitMessage)
	s.Equal(category, result.CategoryLimit)
}

func (s *TransactionServiceTestSuite) TestCreate_LimitErrorDoesNotFail() {
	s.txRepo.EXPECT().CreateWithEffects(gomock.Any(), nil, nil).Return(nil)
	s.budget.EXPECT().GeneralStatus(s.userID, s.now).Return(nil, "", errors.New("database error"))
	s.expectPublished(events.TypeTransactionCreated)

	result, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName: "Shoprite",
		Amount:    decimal.NewFromInt(5000),
		Type:      "Debit",
	})
	s.NoError(err)
	s.Empty(result.LimitMessage)
}

func (s *TransactionServiceTestSuite) TestCreate_PublishFailureIsLogged() {
	s.txRepo.EXPECT().CreateWithEffects(gomock.Any(), nil, nil).Return(nil)
	s.noGeneralLimit()
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	s.eventLogger.EXPECT().LogPublishFailed(gomock.Any(), events.TypeTransactionCreated, "broker down")

	_, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName: "Shoprite",
		Amount:    decimal.NewFromInt(5000),
		Type:      "Debit",
	})
	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestCreate_Recurring() {
	s.txRepo.EXPECT().CreateWithEffects(gomock.Any(), nil, gomock.Any()).DoAndReturn(
		func(tx *models.Transaction, _ *models.SavingPlan, recurring *models.RecurringTransaction) error {
			s.Require().NotNil(recurring)
			s.Equal(models.FrequencyMonthly, recurring.Frequency)
			s.Equal(31, recurring.AnchorDay)
			s.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), recurring.NextDueDate)
			s.True(recurring.Active)
			s.True(tx.Recurring)
			return nil
		})
	s.noGeneralLimit()
	s.expectPublished(events.TypeTransactionCreated)

	result, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName:       "Landlord",
		Amount:          decimal.NewFromInt(150000),
		Type:            "Debit",
		TransactionDate: "2024-01-31",
		Recurring:       true,
		Frequency:       "Monthly",
	})
	s.NoError(err)
	s.Require().NotNil(result.RecurringMessage)
	s.Equal("Recurring transaction created successfully", *result.RecurringMessage)
}

func (s *TransactionServiceTestSuite) TestCreate_RecurringRequiresFrequency() {
	_, err := s.service.Create(s.ctx, s.userID, &dto.CreateTransactionRequest{
		PartyName: "Landlord",
		Amount:    decimal.NewFromInt(150000),
		Type:      "Debit",
		Recurring: true,
	})
	s.ErrorIs(err, apperrors.NewDomainError(apperrors.RecurringInvalidFrequency))
}

func (s *TransactionServiceTestSuite) TestList_Paginates() {
	rows := make([]models.Transaction, 3)
	for i := range rows {
		rows[i] = models.Transaction{ID: uuid.New(), CreatedAt: s.now.Add(-time.Duration(i) * time.Minute)}
	}

	s.txRepo.EXPECT().List(gomock.Any()).DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, error) {
		s.Equal(3, filters.Limit)
		s.Equal(models.TransactionTypeDebit, filters.Type)
		return rows, nil
	})

	resp, err := s.service.List(s.userID, &dto.TransactionQuery{Limit: 2, Type: "Debit"})
	s.NoError(err)
	s.Len(resp.Transactions, 2)
	s.True(resp.Pagination.HasMore)

	cursor, err := DecodeCursor(resp.Pagination.NextCursor)
	s.Require().NoError(err)
	s.Equal(rows[1].ID, cursor.ID)
	s.True(rows[1].CreatedAt.Equal(cursor.Timestamp))
}

func (s *TransactionServiceTestSuite) TestList_EmptyPage() {
	s.txRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

	resp, err := s.service.List(s.userID, &dto.TransactionQuery{})
	s.NoError(err)
	s.NotNil(resp.Transactions)
	s.False(resp.Pagination.HasMore)
	s.Equal(defaultPageSize, resp.Pagination.Limit)
}

func (s *TransactionServiceTestSuite) TestList_InvalidQuery() {
	_, err := s.service.List(s.userID, &dto.TransactionQuery{Cursor: "not-base64!"})
	s.ErrorIs(err, apperrors.NewDomainError(apperrors.TransactionInvalidCursor))

	_, err = s.service.List(s.userID, &dto.TransactionQuery{From: "2024-06-10", To: "2024-06-01"})
	s.ErrorIs(err, apperrors.NewDomainError(apperrors.ValidationInvalidDate))
}

func (s *TransactionServiceTestSuite) TestGet_NotFound() {
	id := uuid.New()
	s.txRepo.EXPECT().GetByID(s.userID, id).Return(nil, repositories.ErrTransactionNotFound)

	_, err := s.service.Get(s.userID, id)
	s.Require().Error(err)
	s.Equal("Transaction does not exist", err.Error())
}

func (s *TransactionServiceTestSuite) TestDelete_RefundsPlan() {
	planID := uuid.New()
	tx := &models.Transaction{
		ID:               uuid.New(),
		UserID:           s.userID,
		Type:             models.TransactionTypeCredit,
		SavingPlanID:     &planID,
		SavingsAllocated: decimal.NewFromInt(300),
	}
	plan := &models.SavingPlan{
		ID:                   planID,
		SavingsAmount:        decimal.NewFromInt(1000),
		SavingsReachedAmount: decimal.NewFromInt(1000),
		SavingsReached:       true,
		Deadline:             s.now.AddDate(0, 1, 0),
		Status:               models.SavingPlanStatusCompleted,
	}

	s.txRepo.EXPECT().GetByID(s.userID, tx.ID).Return(tx, nil)
	s.planRepo.EXPECT().GetByID(s.userID, planID).Return(plan, nil)
	s.txRepo.EXPECT().DeleteAndRefund(tx, plan).DoAndReturn(func(_ *models.Transaction, p *models.SavingPlan) error {
		s.Equal("700.00", p.SavingsReachedAmount.StringFixed(2))
		s.Equal(models.SavingPlanStatusActive, p.Status)
		return nil
	})
	s.expectPublished(events.TypeTransactionDeleted)

	s.NoError(s.service.Delete(s.userID, tx.ID))
}

func (s *TransactionServiceTestSuite) TestDelete_PlanGone() {
	planID := uuid.New()
	tx := &models.Transaction{ID: uuid.New(), SavingPlanID: &planID, SavingsAllocated: decimal.NewFromInt(300)}

	s.txRepo.EXPECT().GetByID(s.userID, tx.ID).Return(tx, nil)
	s.planRepo.EXPECT().GetByID(s.userID, planID).Return(nil, repositories.ErrSavingPlanNotFound)
	s.txRepo.EXPECT().DeleteAndRefund(tx, gomock.Nil()).Return(nil)
	s.expectPublished(events.TypeTransactionDeleted)

	s.NoError(s.service.Delete(s.userID, tx.ID))
}

func (s *TransactionServiceTestSuite) TestSummary() {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	expected := &models.TransactionSummary{}
	s.txRepo.EXPECT().Summarize(s.userID, from, to).Return(expected, nil)

	summary, err := s.service.Summary(s.userID, from, to)
	s.NoError(err)
	s.Equal(expected, summary)

	_, err = s.service.Summary(s.userID, to, from)
	s.ErrorIs(err, apperrors.NewDomainError(apperrors.ValidationInvalidDate))
}

func (s *TransactionServiceTestSuite) TestCursorRoundTrip() {
	c := models.Cursor{Timestamp: s.now, ID: uuid.New()}

	decoded, err := DecodeCursor(EncodeCursor(c))
	s.NoError(err)
	s.Equal(c.ID, decoded.ID)
	s.True(c.Timestamp.Equal(decoded.Timestamp))

	_, err = DecodeCursor(EncodeCursor(models.Cursor{}))
	s.Error(err)
}
