package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionRegister          = "register"
	AuditActionLogin             = "login"
	AuditActionFailedLogin       = "failed_login"
	AuditActionAccountLocked     = "account_locked"
	AuditActionLogout            = "logout"
	AuditActionTokenRefresh      = "token_refresh"
	AuditActionBudgetCreated     = "budget_created"
	AuditActionBudgetUpdated     = "budget_updated"
	AuditActionSavingPlanCreated = "saving_plan_created"
	AuditActionSavingPlanRenewed = "saving_plan_renewed"
	AuditActionReceiptScanned    = "receipt_scanned"
)

// AuditLog records a security or budget-relevant action. UserID is nil for
// anonymous attempts such as a login with an unknown email.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string     `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   Metadata   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(Metadata)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	if al.Resource == "" {
		return fmt.Errorf("audit log %q has no resource", al.Action)
	}
	return nil
}

// Metadata is a JSON object stored in a text column so postgres and the
// sqlite test database read it the same way.
type Metadata map[string]interface{}

func (m Metadata) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, fmt.Errorf("failed to encode audit metadata: %w", err)
	}
	return string(raw), nil
}

func (m *Metadata) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Metadata", value)
	}

	if len(raw) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(raw, (*map[string]interface{})(m))
}
