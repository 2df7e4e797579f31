package shopping

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sportshop/backend/internal/domain/shared"
)

// CartItem is one line of a user's cart.
// The (UserID, Article) pair is unique; adding the same product again
// accumulates onto the existing line instead of creating a new one.
type CartItem struct {
	shared.BaseEntity
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_article,priority:1"`
	Article  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_cart_user_article,priority:2"`
	Quantity int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a cart line with a positive quantity
func NewCartItem(userID uuid.UUID, article string, quantity int) (*CartItem, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Cart item must reference a user")
	}
	article = strings.TrimSpace(article)
	if article == "" {
		return nil, shared.NewDomainError("INVALID_ARTICLE", "Cart item must reference a product article")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}

	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Article:    article,
		Quantity:   quantity,
	}, nil
}

// AddQuantity accumulates onto the line
func (c *CartItem) AddQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity to add must be at least 1")
	}
	c.Quantity += quantity
	c.UpdatedAt = time.Now()
	return nil
}

// SetQuantity replaces the line quantity.
// Quantities below 1 are not representable; callers remove the line instead.
func (c *CartItem) SetQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	c.Quantity = quantity
	c.UpdatedAt = time.Now()
	return nil
}

// LineTotal computes price multiplied by quantity, rounded to 2 decimal places
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
