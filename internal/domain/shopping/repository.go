package shopping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sportshop/backend/internal/domain/shared"
)

// CartRepository defines the contract for cart persistence
type CartRepository interface {
	FindByUserAndArticle(ctx context.Context, userID uuid.UUID, article string) (*CartItem, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]CartItem, error)
	Save(ctx context.Context, item *CartItem) error
	DeleteByUserAndArticle(ctx context.Context, userID uuid.UUID, article string) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

// OrderRepository defines the contract for order persistence
type OrderRepository interface {
	shared.Repository[Order]
	// CreateFromCart persists the order with its items and clears the
	// user's cart rows in a single transaction.
	CreateFromCart(ctx context.Context, order *Order) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	FindByIDWithItems(ctx context.Context, id uuid.UUID) (*Order, error)
}

// DailySales is one row of the sales report
type DailySales struct {
	Date       time.Time       `json:"date"`
	OrderCount int64           `json:"order_count"`
	Total      decimal.Decimal `json:"total"`
}

// SalesReportRepository aggregates completed orders per day.
// Administrator orders are excluded from every aggregate.
type SalesReportRepository interface {
	DailySales(ctx context.Context, from, to *time.Time) ([]DailySales, error)
}
