package shopping

import (
	"time"

	"github.com/google/uuid"

	"github.com/sportshop/backend/internal/domain/shopping"
)

// CartItemDTO is one cart line with its product snapshot
type CartItemDTO struct {
	Article     string `json:"article"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	LineTotal   string `json:"line_total"`
}

// CartDTO is the full cart view
type CartDTO struct {
	Items []CartItemDTO `json:"items"`
	Total string        `json:"total"`
}

// OrderItemDTO is one snapshotted order line
type OrderItemDTO struct {
	Article     string `json:"article"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	LineTotal   string `json:"line_total"`
}

// OrderDTO is the order representation returned to callers
type OrderDTO struct {
	ID        uuid.UUID      `json:"id"`
	Status    string         `json:"status"`
	Total     string         `json:"total"`
	OrderDate time.Time      `json:"order_date"`
	Items     []OrderItemDTO `json:"items,omitempty"`
}

// AddToCartRequest carries the fields for adding a product to the cart
type AddToCartRequest struct {
	Article  string `json:"article" binding:"required,max=50"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest carries a replacement quantity for a cart line
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func toOrderDTO(o *shopping.Order, withItems bool) *OrderDTO {
	dto := &OrderDTO{
		ID:        o.ID,
		Status:    string(o.Status),
		Total:     o.Total.StringFixed(2),
		OrderDate: o.OrderDate,
	}
	if withItems {
		dto.Items = make([]OrderItemDTO, 0, len(o.Items))
		for _, item := range o.Items {
			dto.Items = append(dto.Items, OrderItemDTO{
				Article:     item.Article,
				ProductName: item.ProductName,
				UnitPrice:   item.UnitPrice.StringFixed(2),
				Quantity:    item.Quantity,
				LineTotal:   item.LineTotal.StringFixed(2),
			})
		}
	}
	return dto
}
