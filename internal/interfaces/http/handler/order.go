package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appshopping "github.com/sportshop/backend/internal/application/shopping"
)

// OrderHandler exposes checkout and order history
type OrderHandler struct {
	BaseHandler
	orders *appshopping.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *appshopping.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Checkout handles POST /api/v1/orders/checkout.
// The cart becomes a completed order and is emptied atomically.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	order, err := h.orders.Checkout(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// ListOrders handles GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.orders.GetUserOrders(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// GetOrder handles GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Order ID must be a UUID")
		return
	}

	order, err := h.orders.GetOrderDetails(c.Request.Context(), orderID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
