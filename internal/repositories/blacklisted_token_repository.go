package repositories

import (
	"errors"
	"fmt"
	"time"

	"tracklytic/internal/models"

	"gorm.io/gorm"
)

type blacklistedTokenRepository struct {
	db *gorm.DB
}

func NewBlacklistedTokenRepository(db *gorm.DB) BlacklistedTokenRepositoryInterface {
	return &blacklistedTokenRepository{db: db}
}

// Create blacklists a JTI. Blacklisting the same JTI again is not an error.
func (r *blacklistedTokenRepository) Create(token *models.BlacklistedToken) error {
	if token == nil {
		return errors.New("blacklisted token cannot be nil")
	}
	if err := r.db.Create(token).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (r *blacklistedTokenRepository) IsBlacklisted(jti string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.BlacklistedToken{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return count > 0, nil
}

func (r *blacklistedTokenRepository) DeleteExpired() (int64, error) {
	result := r.db.Where("expires_at < ?", time.Now().UTC()).Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired blacklist entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
