package shopping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sportshop/backend/internal/domain/catalog"
	"github.com/sportshop/backend/internal/domain/identity"
	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/domain/shopping"
)

// OrderService handles checkout and order history use cases
type OrderService struct {
	orders   shopping.OrderRepository
	cart     shopping.CartRepository
	products catalog.ProductRepository
	users    identity.UserRepository
	logger   *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orders shopping.OrderRepository,
	cart shopping.CartRepository,
	products catalog.ProductRepository,
	users identity.UserRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		cart:     cart,
		products: products,
		users:    users,
		logger:   logger,
	}
}

// Checkout turns the user's cart into a completed order.
// The order row, its item snapshots and the cart delete are one
// repository transaction; any failure leaves everything untouched.
func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID) (*OrderDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsAdministrator() {
		return nil, errCartDisabled
	}

	items, err := s.cart.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot place an order with an empty cart")
	}

	lines := make([]shopping.OrderLine, 0, len(items))
	for _, item := range items {
		product, err := s.products.FindByArticle(ctx, item.Article)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				// Product was removed after it was carted; drop the line
				continue
			}
			return nil, err
		}
		lines = append(lines, shopping.OrderLine{
			Article:     product.Article,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
		})
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot place an order with an empty cart")
	}

	order, err := shopping.NewOrder(userID, lines)
	if err != nil {
		return nil, err
	}

	if err := s.orders.CreateFromCart(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("total", order.Total.StringFixed(2)))

	return toOrderDTO(order, true), nil
}

// GetUserOrders returns the user's order history.
// The administrator account is excluded from order history entirely.
func (s *OrderService) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsAdministrator() {
		return []OrderDTO{}, nil
	}

	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, *toOrderDTO(&orders[i], false))
	}
	return dtos, nil
}

// GetOrderDetails returns one order with its item snapshots. Only the
// order's owner may read it; anyone else gets not-found so order ids
// cannot be probed. Orders belonging to the administrator account are
// not visible.
func (s *OrderService) GetOrderDetails(ctx context.Context, orderID, requesterID uuid.UUID) (*OrderDTO, error) {
	order, err := s.orders.FindByIDWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID {
		return nil, shared.ErrNotFound
	}

	owner, err := s.users.FindByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	if owner.IsAdministrator() {
		return nil, shared.ErrNotFound
	}

	return toOrderDTO(order, true), nil
}
