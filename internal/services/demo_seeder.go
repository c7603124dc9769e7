package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"tracklytic/internal/dto"
	"tracklytic/internal/models"
	"tracklytic/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultSeedTransactions = 60
	maxSeedTransactions     = 1000
	seedHistoryDays         = 90
	salaryDay               = 25
)

type seedMerchant struct {
	name     string
	category string
	min, max float64
}

var seedCategories = []struct {
	name string
	kind models.CategoryType
}{
	{"Salary", models.CategoryTypeIncome},
	{"Groceries", models.CategoryTypeExpense},
	{"Food", models.CategoryTypeExpense},
	{"Transport", models.CategoryTypeExpense},
	{"Utilities", models.CategoryTypeExpense},
	{"Airtime", models.CategoryTypeExpense},
	{"Entertainment", models.CategoryTypeExpense},
}

var merchantPool = []seedMerchant{
	{"Shoprite", "Groceries", 3000, 45000},
	{"Spar", "Groceries", 2500, 40000},
	{"Justrite Superstore", "Groceries", 2000, 30000},
	{"Chicken Republic", "Food", 2500, 9000},
	{"Domino's Pizza", "Food", 6000, 18000},
	{"Kilimanjaro", "Food", 2000, 8000},
	{"Bolt", "Transport", 1500, 12000},
	{"Uber", "Transport", 1800, 15000},
	{"Total Energies", "Transport", 10000, 60000},
	{"Ikeja Electric", "Utilities", 5000, 40000},
	{"DSTV", "Utilities", 9000, 37000},
	{"Spectranet", "Utilities", 10000, 25000},
	{"MTN", "Airtime", 500, 10000},
	{"Airtel", "Airtime", 500, 8000},
	{"Filmhouse Cinemas", "Entertainment", 4000, 12000},
	{"Netflix", "Entertainment", 2200, 8500},
}

type demoSeeder struct {
	categoryRepo repositories.CategoryRepositoryInterface
	txRepo       repositories.TransactionRepositoryInterface
	planRepo     repositories.SavingPlanRepositoryInterface
	limitRepo    repositories.SpendingLimitRepositoryInterface
	faker        *gofakeit.Faker
	clock        func() time.Time
}

// NewDemoSeeder creates a seeder that fills accounts with plausible history
func NewDemoSeeder(
	categoryRepo repositories.CategoryRepositoryInterface,
	txRepo repositories.TransactionRepositoryInterface,
	planRepo repositories.SavingPlanRepositoryInterface,
	limitRepo repositories.SpendingLimitRepositoryInterface,
	clock func() time.Time,
) DemoSeederInterface {
	if clock == nil {
		clock = time.Now
	}
	return &demoSeeder{
		categoryRepo: categoryRepo,
		txRepo:       txRepo,
		planRepo:     planRepo,
		limitRepo:    limitRepo,
		faker:        gofakeit.New(0),
		clock:        clock,
	}
}

// Seed adds categories, a salary and spending history over the last
// seedHistoryDays, one saving plan and a monthly limit. Existing categories,
// plans and limits are reused rather than duplicated.
func (s *demoSeeder) Seed(userID uuid.UUID, transactions int) (*dto.SeedResponse, error) {
	if transactions <= 0 {
		transactions = defaultSeedTransactions
	}
	if transactions > maxSeedTransactions {
		transactions = maxSeedTransactions
	}

	resp := &dto.SeedResponse{}

	categories, created, err := s.ensureCategories(userID)
	if err != nil {
		return nil, err
	}
	resp.Categories = created

	end := models.DateOnly(s.clock())
	start := end.AddDate(0, 0, -seedHistoryDays)

	history := s.generateSalaries(userID, categories["Salary"], start, end)
	if len(history) > transactions {
		history = history[:transactions]
	}
	for len(history) < transactions {
		history = append(history, s.generatePurchase(userID, categories, start, end))
	}
	sortByDate(history)

	for _, tx := range history {
		if err := s.txRepo.Create(tx); err != nil {
			return nil, fmt.Errorf("failed to seed transaction: %w", err)
		}
	}
	resp.Transactions = len(history)

	if resp.SavingPlans, err = s.ensureSavingPlan(userID, end); err != nil {
		return nil, err
	}
	if resp.Budgets, err = s.ensureGeneralLimit(userID); err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *demoSeeder) ensureCategories(userID uuid.UUID) (map[string]*models.Category, int, error) {
	categories := make(map[string]*models.Category, len(seedCategories))
	created := 0

	for _, sc := range seedCategories {
		category, err := s.categoryRepo.GetByTag(userID, models.CategoryTag(sc.name))
		if err == nil {
			categories[sc.name] = category
			continue
		}
		if !errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, 0, fmt.Errorf("failed to look up category: %w", err)
		}

		category = &models.Category{UserID: userID, Name: sc.name, Type: sc.kind}
		if err := s.categoryRepo.Create(category); err != nil {
			return nil, 0, fmt.Errorf("failed to seed category: %w", err)
		}
		categories[sc.name] = category
		created++
	}

	return categories, created, nil
}

// generateSalaries pays the user on salaryDay of every month in [start, end].
func (s *demoSeeder) generateSalaries(userID uuid.UUID, salary *models.Category, start, end time.Time) []*models.Transaction {
	employer := s.faker.Company()
	amount := decimal.NewFromFloat(s.faker.Float64Range(250000, 600000)).Round(-3)

	var txs []*models.Transaction
	for month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(end); month = month.AddDate(0, 1, 0) {
		payday := month.AddDate(0, 0, salaryDay-1)
		if payday.Before(start) || payday.After(end) {
			continue
		}
		txs = append(txs, &models.Transaction{
			UserID:          userID,
			PartyName:       employer,
			Amount:          amount,
			Type:            models.TransactionTypeCredit,
			CategoryID:      &salary.ID,
			Notes:           "Monthly salary",
			TransactionDate: payday,
		})
	}
	return txs
}

func (s *demoSeeder) generatePurchase(userID uuid.UUID, categories map[string]*models.Category, start, end time.Time) *models.Transaction {
	merchant := merchantPool[s.faker.IntRange(0, len(merchantPool)-1)]
	category := categories[merchant.category]

	return &models.Transaction{
		UserID:          userID,
		PartyName:       merchant.name,
		Amount:          decimal.NewFromFloat(s.faker.Float64Range(merchant.min, merchant.max)).Round(2),
		Type:            models.TransactionTypeDebit,
		CategoryID:      &category.ID,
		Notes:           s.faker.Sentence(6),
		TransactionDate: models.DateOnly(s.faker.DateRange(start, end.Add(24*time.Hour-time.Second)).UTC()),
	}
}

func (s *demoSeeder) ensureSavingPlan(userID uuid.UUID, today time.Time) (int, error) {
	plans, err := s.planRepo.GetByUserID(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list saving plans: %w", err)
	}
	if len(plans) > 0 {
		return 0, nil
	}

	plan := &models.SavingPlan{
		UserID:               userID,
		Name:                 "Emergency Fund",
		SavingsAmount:        decimal.NewFromInt(500000),
		SavingsReachedAmount: decimal.Zero,
		Deadline:             today.AddDate(0, 6, 0),
		Status:               models.SavingPlanStatusActive,
	}
	if err := s.planRepo.Create(plan); err != nil {
		return 0, fmt.Errorf("failed to seed saving plan: %w", err)
	}
	return 1, nil
}

func (s *demoSeeder) ensureGeneralLimit(userID uuid.UUID) (int, error) {
	_, err := s.limitRepo.GetGeneralByUserID(userID)
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, repositories.ErrGeneralLimitNotFound) {
		return 0, fmt.Errorf("failed to get general limit: %w", err)
	}

	limit := &models.GeneralSpendingLimit{
		UserID:       userID,
		BudgetPlan:   models.BudgetPlanMonthly,
		BudgetAmount: decimal.NewFromInt(300000),
	}
	if err := s.limitRepo.CreateGeneral(limit); err != nil {
		return 0, fmt.Errorf("failed to seed general limit: %w", err)
	}
	return 1, nil
}

func sortByDate(txs []*models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].TransactionDate.Before(txs[j].TransactionDate)
	})
}
