package catalog

import (
	"strings"
	"time"

	"github.com/sportshop/backend/internal/domain/shared"
)

// Brand represents a product brand
// It is the aggregate root for brand-related operations
type Brand struct {
	shared.BaseAggregateRoot
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	ImageURL string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Brand) TableName() string {
	return "brands"
}

// NewBrand creates a new brand
func NewBrand(name, imageURL string) (*Brand, error) {
	if err := validateBrandName(name); err != nil {
		return nil, err
	}

	return &Brand{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		ImageURL:          strings.TrimSpace(imageURL),
	}, nil
}

// Update updates the brand's information
func (b *Brand) Update(name, imageURL string) error {
	if err := validateBrandName(name); err != nil {
		return err
	}

	b.Name = strings.TrimSpace(name)
	b.ImageURL = strings.TrimSpace(imageURL)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// validateBrandName validates the brand name
func validateBrandName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Brand name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Brand name cannot exceed 100 characters")
	}
	return nil
}
