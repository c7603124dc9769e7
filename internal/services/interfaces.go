package services

import (
	"context"
	"time"

	"tracklytic/internal/dto"
	"tracklytic/internal/events"
	"tracklytic/internal/models"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
	GetProfile(userID uuid.UUID) (*models.User, error)
}

// AuditServiceInterface records security and configuration changes per user
type AuditServiceInterface interface {
	Record(entry *models.AuditLog)
	GetUserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// EventLoggerInterface writes structured records for notable domain events
type EventLoggerInterface interface {
	LogTransactionCreated(ctx context.Context, tx *models.Transaction)
	LogSavingsAllocated(ctx context.Context, planID uuid.UUID, allocated, overflow string, status models.SavingPlanStatus)
	LogSavingGoalReached(ctx context.Context, plan *models.SavingPlan)
	LogLimitReached(ctx context.Context, userID uuid.UUID, status *models.LimitStatus)
	LogRecurringRun(ctx context.Context, processed, failed int, durationMs int64)
	LogReceiptScanned(ctx context.Context, userID uuid.UUID, bank string, durationMs int64, created bool)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogPublishFailed(ctx context.Context, eventType string, errorMsg string)
}

// EventPublisherInterface forwards domain events to the message broker
type EventPublisherInterface interface {
	Publish(ctx context.Context, event events.Event) error
}

type CategoryServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	List(userID uuid.UUID) ([]models.Category, error)
	Delete(userID, categoryID uuid.UUID) error
	// Suggest returns the user category that best matches a counterparty name, or nil.
	Suggest(userID uuid.UUID, partyName string, kind models.TransactionType) (*models.Category, float64, error)
}

type BudgetServiceInterface interface {
	CreateGeneral(userID uuid.UUID, req *dto.GeneralBudgetRequest) (*models.GeneralSpendingLimit, error)
	CreateForCategory(userID uuid.UUID, req *dto.CategoryBudgetRequest) (*models.CategorySpendingLimit, error)
	EditGeneral(userID, limitID uuid.UUID, req *dto.GeneralBudgetRequest) (*models.GeneralSpendingLimit, error)
	EditCategory(userID, limitID uuid.UUID, req *dto.CategoryBudgetRequest) (*models.CategorySpendingLimit, error)
	List(userID uuid.UUID) (*dto.BudgetListResponse, error)
	// GeneralStatus returns the status of the general limit and its message. The
	// status is nil when the user has no general limit.
	GeneralStatus(userID uuid.UUID, now time.Time) (*models.LimitStatus, string, error)
	CategoryStatus(userID, categoryID uuid.UUID, now time.Time) (*models.LimitStatus, error)
	Status(userID uuid.UUID, now time.Time) (*dto.BudgetStatusResponse, error)
}

type SavingPlanServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateSavingPlanRequest) (*models.SavingPlan, error)
	List(userID uuid.UUID) ([]models.SavingPlan, error)
	CheckStatus(userID uuid.UUID, today time.Time) ([]models.SavingPlan, error)
	Renew(userID, planID uuid.UUID, req *dto.RenewSavingPlanRequest, today time.Time) (*models.SavingPlan, error)
	RefreshAll(ctx context.Context, today time.Time) (int, error)
}

type TransactionServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResult, error)
	List(userID uuid.UUID, query *dto.TransactionQuery) (*dto.ListTransactionsResponse, error)
	Get(userID, transactionID uuid.UUID) (*models.Transaction, error)
	Delete(userID, transactionID uuid.UUID) error
	Summary(userID uuid.UUID, from, to time.Time) (*models.TransactionSummary, error)
}

type RecurringServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateRecurringRequest) (*models.RecurringTransaction, error)
	List(userID uuid.UUID, activeOnly bool) ([]models.RecurringTransaction, error)
	Deactivate(userID, recurringID uuid.UUID) error
	ProcessDue(ctx context.Context, now time.Time) (int, error)
}

// ReceiptExtractorInterface turns a stored receipt file into text
type ReceiptExtractorInterface interface {
	Extract(ctx context.Context, path string) (string, error)
}

type ReceiptServiceInterface interface {
	Scan(ctx context.Context, userID uuid.UUID, upload *dto.ReceiptUpload) (*dto.ReceiptScanResponse, error)
}

// AdvisorClientInterface sends a prompt to the generative model
type AdvisorClientInterface interface {
	GenerateAdvice(ctx context.Context, prompt string) (string, error)
	Model() string
}

type InsightServiceInterface interface {
	Generate(ctx context.Context, userID uuid.UUID) (*dto.InsightResponse, error)
}

// DemoSeederInterface fills an account with generated data for local development
type DemoSeederInterface interface {
	Seed(userID uuid.UUID, transactions int) (*dto.SeedResponse, error)
}
