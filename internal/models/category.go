package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

var ErrInvalidCategoryType = errors.New("category type must be Income or Expense")

// Category is a user owned label for transactions. Tag is the case folded name
// and is unique per user.
type Category struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_tag" json:"user_id"`
	Name      string       `gorm:"type:varchar(100);not null" json:"name"`
	Type      CategoryType `gorm:"type:varchar(20);not null" json:"type"`
	Tag       string       `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_tag" json:"tag"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

var tagCaser = cases.Fold()

// CategoryTag returns the normalised tag for a category name.
func CategoryTag(name string) string {
	return tagCaser.String(strings.Join(strings.Fields(name), " "))
}

// DisplayName title-cases a category name for responses.
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Tag = CategoryTag(c.Name)

	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	return c.Validate()
}

func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if c.Name == "" {
		return errors.New("category name is required")
	}
	if !c.Type.IsValid() {
		return ErrInvalidCategoryType
	}
	return nil
}

func (c *Category) TableName() string {
	return "categories"
}
