package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/domain/shared/valueobject"
)

// Product represents an item in the catalog
// It is the aggregate root for product-related operations.
// Article is the natural key shown to customers and printed on orders.
type Product struct {
	shared.BaseAggregateRoot
	Article     string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Brand       string          `gorm:"type:varchar(100);index"`
	Description string          `gorm:"type:text"`
	ImageURL    string          `gorm:"type:varchar(500)"`
	Material    string          `gorm:"type:varchar(100)"`
	Color       string          `gorm:"type:varchar(50)"`
	Size        string          `gorm:"type:varchar(50)"`
	Country     string          `gorm:"type:varchar(100)"`
	Gender      string          `gorm:"type:varchar(20)"`
	Season      string          `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(article, name, category string, price valueobject.Money) (*Product, error) {
	if err := validateArticle(article); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if !IsValidCategory(category) {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown product category")
	}
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be positive")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Article:           strings.TrimSpace(article),
		Name:              strings.TrimSpace(name),
		Price:             price.Amount().Round(2),
		Category:          category,
	}, nil
}

// Update updates the product's descriptive information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetBrand sets the product brand by name.
// An empty brand means the product is unbranded.
func (p *Product) SetBrand(brand string) {
	p.Brand = strings.TrimSpace(brand)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetCategory moves the product to another department
func (p *Product) SetCategory(category string) error {
	if !IsValidCategory(category) {
		return shared.NewDomainError("INVALID_CATEGORY", "Unknown product category")
	}

	p.Category = category
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// UpdatePrice updates the selling price
func (p *Product) UpdatePrice(price valueobject.Money) error {
	if !price.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Price must be positive")
	}

	p.Price = price.Amount().Round(2)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetAttributes sets the descriptive attributes shown on the product card
func (p *Product) SetAttributes(material, color, size, country, gender, season string) {
	p.Material = strings.TrimSpace(material)
	p.Color = strings.TrimSpace(color)
	p.Size = strings.TrimSpace(size)
	p.Country = strings.TrimSpace(country)
	p.Gender = strings.TrimSpace(gender)
	p.Season = strings.TrimSpace(season)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetImageURL sets the product image location
func (p *Product) SetImageURL(url string) {
	p.ImageURL = strings.TrimSpace(url)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// HasBrand returns true if the product has a brand assigned
func (p *Product) HasBrand() bool {
	return strings.TrimSpace(p.Brand) != ""
}

// PriceMoney returns the price as a Money value object
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyRUB(p.Price)
}

// validateArticle validates the product article (SKU)
func validateArticle(article string) error {
	article = strings.TrimSpace(article)
	if article == "" {
		return shared.NewDomainError("INVALID_ARTICLE", "Product article cannot be empty")
	}
	if len(article) > 50 {
		return shared.NewDomainError("INVALID_ARTICLE", "Product article cannot exceed 50 characters")
	}
	return nil
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
