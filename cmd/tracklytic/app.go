package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"tracklytic/internal/advisor"
	"tracklytic/internal/config"
	"tracklytic/internal/database"
	"tracklytic/internal/events"
	"tracklytic/internal/models"
	"tracklytic/internal/receipt"
	"tracklytic/internal/repositories"
	"tracklytic/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

type eventPublisher interface {
	services.EventPublisherInterface
	io.Closer
}

type repos struct {
	users        repositories.UserRepositoryInterface
	refresh      repositories.RefreshTokenRepositoryInterface
	blacklist    repositories.BlacklistedTokenRepositoryInterface
	audit        repositories.AuditLogRepositoryInterface
	categories   repositories.CategoryRepositoryInterface
	transactions repositories.TransactionRepositoryInterface
	limits       repositories.SpendingLimitRepositoryInterface
	plans        repositories.SavingPlanRepositoryInterface
	recurring    repositories.RecurringTransactionRepositoryInterface
}

// app holds the wired dependency graph shared by serve and worker
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	db        *database.DB
	publisher eventPublisher
	repos     repos
	// clock reads the current time in the calendar timezone
	clock func() time.Time

	tokens       services.TokenServiceInterface
	auth         services.AuthServiceInterface
	categories   services.CategoryServiceInterface
	budgets      services.BudgetServiceInterface
	savingPlans  services.SavingPlanServiceInterface
	transactions services.TransactionServiceInterface
	recurring    services.RecurringServiceInterface
	receipts     services.ReceiptServiceInterface
	insights     services.InsightServiceInterface
	seeder       services.DemoSeederInterface
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*app, error) {
	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a := &app{cfg: cfg, logger: logger, db: db}
	a.clock = models.ClockIn(calendarLocation(cfg.Worker, logger))
	a.publisher = newPublisher(cfg.Events, logger)

	a.repos = repos{
		users:        repositories.NewUserRepository(db.DB),
		refresh:      repositories.NewRefreshTokenRepository(db.DB),
		blacklist:    repositories.NewBlacklistedTokenRepository(db.DB),
		audit:        repositories.NewAuditLogRepository(db.DB),
		categories:   repositories.NewCategoryRepository(db.DB),
		transactions: repositories.NewTransactionRepository(db.DB),
		limits:       repositories.NewSpendingLimitRepository(db.DB),
		plans:        repositories.NewSavingPlanRepository(db.DB),
		recurring:    repositories.NewRecurringTransactionRepository(db.DB),
	}
	r := a.repos

	metrics := services.NewPrometheusMetrics(reg)
	eventLogger := services.NewEventLogger(logger)
	audit := services.NewAuditService(r.audit, logger)

	a.tokens = services.NewTokenService(&cfg.JWT)
	a.auth = services.NewAuthService(r.users, r.refresh, r.blacklist,
		services.NewPasswordService(cfg.Security), a.tokens, audit, metrics, cfg.Security, logger)
	a.categories = services.NewCategoryService(r.categories)
	a.budgets = services.NewBudgetService(r.limits, r.categories, r.transactions, audit, logger)
	a.savingPlans = services.NewSavingPlanService(r.plans, audit, eventLogger, logger)
	a.transactions = services.NewTransactionService(r.transactions, r.categories, r.plans, a.budgets,
		a.publisher, metrics, eventLogger, logger, a.clock)
	a.recurring = services.NewRecurringService(r.recurring, r.categories, a.publisher, metrics, eventLogger, logger)

	parser, err := receipt.NewDefaultParser()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load bank templates: %w", err)
	}
	a.receipts = services.NewReceiptService(receipt.NewExtractor(cfg.Receipt, logger), parser, r.users,
		a.categories, a.transactions, audit, a.publisher, metrics, eventLogger, cfg.Receipt, logger)

	var advisorClient services.AdvisorClientInterface
	if cfg.InsightsEnabled() {
		client, err := advisor.NewGeminiClient(ctx, cfg.Insights, logger)
		if err != nil {
			logger.Warn("Gemini client unavailable, insights disabled", "error", err)
		} else {
			advisorClient = client
		}
	}
	a.insights = services.NewInsightService(advisorClient, r.users, r.transactions, r.limits, r.plans,
		services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()), metrics, eventLogger, cfg.Insights, logger)

	a.seeder = services.NewDemoSeeder(r.categories, r.transactions, r.plans, r.limits, a.clock)

	return a, nil
}

// newPublisher connects to the broker when AMQP_URL is set. Events are
// dropped otherwise so the API keeps working without a broker.
func newPublisher(cfg config.EventsConfig, logger *slog.Logger) eventPublisher {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP disabled, transaction events will not be published")
		return events.NopPublisher{}
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange, cfg.Queue, logger)
	if err != nil {
		logger.Warn("Failed to connect to AMQP, continuing without events", "error", err)
		return events.NopPublisher{}
	}
	logger.Info("AMQP publisher connected", "exchange", cfg.Exchange, "queue", cfg.Queue)
	return publisher
}

func (a *app) Close() {
	if err := a.publisher.Close(); err != nil {
		a.logger.Warn("Failed to close event publisher", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("Failed to close database", "error", err)
	}
}
