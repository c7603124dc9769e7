package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tracklytic/internal/config"
	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/events"
	"tracklytic/internal/models"
	"tracklytic/internal/receipt"
	"tracklytic/internal/repositories"

	"github.com/google/uuid"
)

type receiptService struct {
	extractor   ReceiptExtractorInterface
	parser      *receipt.Parser
	userRepo    repositories.UserRepositoryInterface
	categories  CategoryServiceInterface
	txService   TransactionServiceInterface
	audit       AuditServiceInterface
	publisher   EventPublisherInterface
	metrics     MetricsRecorderInterface
	eventLogger EventLoggerInterface
	cfg         config.ReceiptConfig
	logger      *slog.Logger
}

func NewReceiptService(
	extractor ReceiptExtractorInterface,
	parser *receipt.Parser,
	userRepo repositories.UserRepositoryInterface,
	categories CategoryServiceInterface,
	txService TransactionServiceInterface,
	audit AuditServiceInterface,
	publisher EventPublisherInterface,
	metrics MetricsRecorderInterface,
	eventLogger EventLoggerInterface,
	cfg config.ReceiptConfig,
	logger *slog.Logger,
) ReceiptServiceInterface {
	return &receiptService{
		extractor:   extractor,
		parser:      parser,
		userRepo:    userRepo,
		categories:  categories,
		txService:   txService,
		audit:       audit,
		publisher:   publisher,
		metrics:     metrics,
		eventLogger: eventLogger,
		cfg:         cfg,
		logger:      logger,
	}
}

// Scan stores the upload, reads it and maps the result onto a transaction.
// The file is kept as the transaction's receipt when one is created and
// removed otherwise.
func (s *receiptService) Scan(ctx context.Context, userID uuid.UUID, upload *dto.ReceiptUpload) (*dto.ReceiptScanResponse, error) {
	if err := s.validateUpload(upload); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	path, err := s.store(userID, upload)
	if err != nil {
		return nil, err
	}
	keep := false
	defer func() {
		if !keep {
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				s.logger.WarnContext(ctx, "failed to remove receipt file", "path", path, "error", err)
			}
		}
	}()

	start := time.Now()
	text, err := s.extractor.Extract(ctx, path)
	elapsed := time.Since(start)
	s.metrics.RecordProcessingTime(MetricReceiptExtraction, elapsed)
	if err != nil {
		s.metrics.IncrementCounter(MetricReceiptScanned, map[string]string{"bank": receipt.GenericBankName, "status": "failed"})
		switch {
		case errors.Is(err, receipt.ErrOCRUnavailable):
			s.logger.ErrorContext(ctx, "receipt ocr tooling missing", "error", err)
			return nil, apperrors.NewDomainError(apperrors.ReceiptOCRUnavailable)
		case errors.Is(err, receipt.ErrNoText):
			return nil, apperrors.NewDomainError(apperrors.ReceiptUnreadable)
		case errors.Is(err, receipt.ErrUnsupportedFile):
			return nil, apperrors.NewDomainError(apperrors.ReceiptUnsupportedType)
		default:
			return nil, fmt.Errorf("failed to extract receipt text: %w", err)
		}
	}

	result := s.parser.Parse(text)
	req := receipt.MapToTransaction(result, user.Username)

	response := &dto.ReceiptScanResponse{Extraction: result}

	category, _, err := s.categories.Suggest(userID, req.PartyName, result.Type)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to suggest category", "error", err, "user_id", userID)
	} else if category != nil {
		response.SuggestedCategory = category
		req.Category = &category.ID
	}

	if upload.Create {
		if !result.Found() {
			s.metrics.IncrementCounter(MetricReceiptScanned, map[string]string{"bank": result.Bank, "status": "unreadable"})
			return nil, apperrors.Domainf(apperrors.ReceiptUnreadable, "No amount could be read from the receipt")
		}

		req.Receipt = path
		created, err := s.txService.Create(ctx, userID, req)
		if err != nil {
			return nil, err
		}
		keep = true
		response.Transaction = created.Transaction
		response.Created = true
	} else {
		response.Transaction = previewTransaction(userID, req, result)
	}

	s.metrics.IncrementCounter(MetricReceiptScanned, map[string]string{"bank": result.Bank, "status": "parsed"})
	s.eventLogger.LogReceiptScanned(ctx, userID, result.Bank, elapsed.Milliseconds(), response.Created)
	entry := &models.AuditLog{
		UserID:   &userID,
		Action:   models.AuditActionReceiptScanned,
		Resource: "receipt",
		Metadata: map[string]interface{}{
			"bank":     result.Bank,
			"filename": filepath.Base(upload.Filename),
			"created":  response.Created,
		},
	}
	if response.Created {
		entry.ResourceID = response.Transaction.ID.String()
	}
	s.audit.Record(entry)
	s.publish(ctx, events.New(events.TypeReceiptScanned, userID, result))

	return response, nil
}

func (s *receiptService) validateUpload(upload *dto.ReceiptUpload) error {
	if upload == nil || upload.Content == nil || upload.Filename == "" {
		return apperrors.NewDomainError(apperrors.ReceiptMissingFile)
	}
	if !receipt.IsSupported(upload.Filename) {
		return apperrors.NewDomainError(apperrors.ReceiptUnsupportedType)
	}
	if upload.Size > s.cfg.MaxUploadSize {
		return apperrors.NewDomainError(apperrors.ReceiptTooLarge)
	}
	return nil
}

// store copies the upload to StorageDir/<user>/<uuid><ext>. Uploads whose
// declared size understates the body are rejected once the limit is passed.
func (s *receiptService) store(userID uuid.UUID, upload *dto.ReceiptUpload) (string, error) {
	dir := filepath.Join(s.cfg.StorageDir, userID.String())
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create receipt dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	path := filepath.Join(dir, uuid.NewString()+ext)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", fmt.Errorf("failed to create receipt file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(upload.Content, s.cfg.MaxUploadSize+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil && written > s.cfg.MaxUploadSize {
		os.Remove(path)
		return "", apperrors.NewDomainError(apperrors.ReceiptTooLarge)
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write receipt file: %w", err)
	}
	if written == 0 {
		os.Remove(path)
		return "", apperrors.NewDomainError(apperrors.ReceiptMissingFile)
	}

	return path, nil
}

// previewTransaction shows what would be stored without saving it.
func previewTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest, result *receipt.Result) *models.Transaction {
	tx := &models.Transaction{
		UserID:     userID,
		PartyName:  req.PartyName,
		Amount:     req.Amount,
		Type:       models.TransactionType(req.Type),
		CategoryID: req.Category,
		Notes:      req.Notes,
	}
	if result.TransactionDate != nil {
		tx.TransactionDate = *result.TransactionDate
	}
	return tx
}

func (s *receiptService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.eventLogger.LogPublishFailed(ctx, event.Type, err.Error())
		s.metrics.IncrementCounter(MetricEventPublishFailed, map[string]string{"event_type": event.Type})
	}
}
