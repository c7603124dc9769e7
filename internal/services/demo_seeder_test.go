package services

import (
	"errors"
	"testing"
	"time"

	"tracklytic/internal/models"
	"tracklytic/internal/repositories"
	"tracklytic/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type DemoSeederTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	txRepo       *repository_mocks.MockTransactionRepositoryInterface
	planRepo     *repository_mocks.MockSavingPlanRepositoryInterface
	limitRepo    *repository_mocks.MockSpendingLimitRepositoryInterface
	seeder       *demoSeeder
	userID       uuid.UUID
	today        time.Time
}

func TestDemoSeederSuite(t *testing.T) {
	suite.Run(t, new(DemoSeederTestSuite))
}

func (s *DemoSeederTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.txRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.planRepo = repository_mocks.NewMockSavingPlanRepositoryInterface(s.ctrl)
	s.limitRepo = repository_mocks.NewMockSpendingLimitRepositoryInterface(s.ctrl)

	s.seeder = NewDemoSeeder(s.categoryRepo, s.txRepo, s.planRepo, s.limitRepo, nil).(*demoSeeder)
	s.seeder.faker = gofakeit.New(42)
	s.today = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	s.seeder.clock = func() time.Time { return s.today.Add(9 * time.Hour) }
	s.userID = uuid.New()
}

func (s *DemoSeederTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DemoSeederTestSuite) expectNewCategories() {
	s.categoryRepo.EXPECT().GetByTag(s.userID, gomock.Any()).Return(nil, repositories.ErrCategoryNotFound).Times(len(seedCategories))
	s.categoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Category) error {
		c.ID = uuid.New()
		return nil
	}).Times(len(seedCategories))
}

func (s *DemoSeederTestSuite) TestSeed_EmptyAccount() {
	s.expectNewCategories()

	var seeded []*models.Transaction
	s.txRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(tx *models.Transaction) error {
		seeded = append(seeded, tx)
		return nil
	}).Times(30)
	s.planRepo.EXPECT().GetByUserID(s.userID).Return(nil, nil)
	s.planRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.SavingPlan) error {
		s.Equal(s.today.AddDate(0, 6, 0), p.Deadline)
		return nil
	})
	s.limitRepo.EXPECT().GetGeneralByUserID(s.userID).Return(nil, repositories.ErrGeneralLimitNotFound)
	s.limitRepo.EXPECT().CreateGeneral(gomock.Any()).Return(nil)

	resp, err := s.seeder.Seed(s.userID, 30)

	s.Require().NoError(err)
	s.Equal(len(seedCategories), resp.Categories)
	s.Equal(30, resp.Transactions)
	s.Equal(1, resp.SavingPlans)
	s.Equal(1, resp.Budgets)

	salaries := 0
	start := s.today.AddDate(0, 0, -seedHistoryDays)
	for i, tx := range seeded {
		s.Equal(s.userID, tx.UserID)
		s.True(tx.Amount.IsPositive())
		s.NotNil(tx.CategoryID)
		s.False(tx.TransactionDate.Before(start), tx.TransactionDate)
		s.False(tx.TransactionDate.After(s.today), tx.TransactionDate)
		if i > 0 {
			s.False(tx.TransactionDate.Before(seeded[i-1].TransactionDate))
		}
		if tx.Type == models.TransactionTypeCredit {
			salaries++
			s.Equal(salaryDay, tx.TransactionDate.Day())
		}
	}
	// Mar 25, Apr 25 and May 25 fall inside the 90 days before Jun 15.
	s.Equal(3, salaries)
}

func (s *DemoSeederTestSuite) TestSeed_ReusesExistingData() {
	s.categoryRepo.EXPECT().GetByTag(s.userID, gomock.Any()).DoAndReturn(func(_ uuid.UUID, tag string) (*models.Category, error) {
		return &models.Category{ID: uuid.New(), Tag: tag}, nil
	}).Times(len(seedCategories))
	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(2)
	s.planRepo.EXPECT().GetByUserID(s.userID).Return([]models.SavingPlan{{Name: "Rent"}}, nil)
	s.limitRepo.EXPECT().GetGeneralByUserID(s.userID).Return(&models.GeneralSpendingLimit{}, nil)

	resp, err := s.seeder.Seed(s.userID, 2)

	s.Require().NoError(err)
	s.Equal(0, resp.Categories)
	s.Equal(2, resp.Transactions)
	s.Equal(0, resp.SavingPlans)
	s.Equal(0, resp.Budgets)
}

func (s *DemoSeederTestSuite) TestSeed_DefaultCount() {
	s.expectNewCategories()
	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(defaultSeedTransactions)
	s.planRepo.EXPECT().GetByUserID(s.userID).Return([]models.SavingPlan{{}}, nil)
	s.limitRepo.EXPECT().GetGeneralByUserID(s.userID).Return(&models.GeneralSpendingLimit{}, nil)

	resp, err := s.seeder.Seed(s.userID, 0)

	s.Require().NoError(err)
	s.Equal(defaultSeedTransactions, resp.Transactions)
}

func (s *DemoSeederTestSuite) TestSeed_TransactionError() {
	s.expectNewCategories()
	s.txRepo.EXPECT().Create(gomock.Any()).Return(errors.New("disk full"))

	_, err := s.seeder.Seed(s.userID, 5)

	s.ErrorContains(err, "failed to seed transaction")
}

func (s *DemoSeederTestSuite) TestSeed_CategoryLookupError() {
	s.categoryRepo.EXPECT().GetByTag(s.userID, gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := s.seeder.Seed(s.userID, 5)

	s.ErrorContains(err, "failed to look up category")
}
