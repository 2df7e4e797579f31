package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sportshop/backend/internal/domain/shared"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is the aggregate root for a placed order.
// Item rows snapshot name and price at checkout time so later catalog
// edits never change order history.
type Order struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status    OrderStatus     `gorm:"type:varchar(20);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	OrderDate time.Time       `gorm:"not null;index"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a snapshot of one cart line at checkout
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Article     string          `gorm:"type:varchar(50);not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderLine describes one line to snapshot into a new order
type OrderLine struct {
	Article     string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// NewOrder creates a completed order from cart lines.
// The total is recomputed from the lines, never trusted from the caller.
func NewOrder(userID uuid.UUID, lines []OrderLine) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Order must reference a user")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot place an order with an empty cart")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Status:            OrderStatusCompleted,
		OrderDate:         time.Now(),
		Items:             make([]OrderItem, 0, len(lines)),
	}

	total := decimal.Zero
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Order line quantity must be at least 1")
		}
		lineTotal := LineTotal(line.UnitPrice, line.Quantity)
		order.Items = append(order.Items, OrderItem{
			BaseEntity:  shared.NewBaseEntity(),
			OrderID:     order.ID,
			Article:     line.Article,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice.Round(2),
			Quantity:    line.Quantity,
			LineTotal:   lineTotal,
		})
		total = total.Add(lineTotal)
	}
	order.Total = total.Round(2)

	return order, nil
}

// IsCompleted returns true if the order is completed
func (o *Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// ItemCount returns the total quantity across all lines
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
