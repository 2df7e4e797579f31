package handler

import (
	"github.com/gin-gonic/gin"

	appshopping "github.com/sportshop/backend/internal/application/shopping"
)

// CartHandler exposes the authenticated user's shopping cart
type CartHandler struct {
	BaseHandler
	cart *appshopping.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart *appshopping.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := h.cart.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem handles POST /api/v1/cart/items.
// Adding an article already in the cart accumulates onto its line.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appshopping.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Article and a positive quantity are required")
		return
	}

	item, err := h.cart.AddToCart(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// UpdateItem handles PUT /api/v1/cart/items/:article.
// A quantity of zero or less removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appshopping.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Quantity is required")
		return
	}

	item, err := h.cart.UpdateQuantity(c.Request.Context(), userID, c.Param("article"), req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if item == nil {
		h.NoContent(c)
		return
	}
	h.Success(c, item)
}

// RemoveItem handles DELETE /api/v1/cart/items/:article
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.cart.RemoveFromCart(c.Request.Context(), userID, c.Param("article")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Clear handles DELETE /api/v1/cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.cart.ClearCart(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
