package services

import (
	"errors"
	"fmt"
	"log/slog"

	"tracklytic/internal/models"
	"tracklytic/internal/repositories"

	"github.com/google/uuid"
)

var ErrInvalidAuditLog = errors.New("invalid audit log")

// AuditService writes and reads the audit trail
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:   repo,
		logger: logger,
	}
}

// Record stores an audit entry. Failures are logged and never returned so the
// audited operation is not blocked.
func (s *AuditService) Record(log *models.AuditLog) {
	if log == nil {
		return
	}

	if log.Action == "" || log.Resource == "" {
		s.logger.Error("refusing to write audit log", "error", ErrInvalidAuditLog, "action", log.Action)
		return
	}

	if err := s.repo.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", log.Action,
			"resource", log.Resource,
			"resource_id", log.ResourceID)
	}
}

// GetUserActivity returns a page of the user's audit entries, newest first.
func (s *AuditService) GetUserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	logs, total, err := s.repo.GetByUserID(userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get user activity: %w", err)
	}
	return logs, total, nil
}
