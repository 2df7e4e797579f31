package shopping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sportshop/backend/internal/domain/catalog"
	"github.com/sportshop/backend/internal/domain/identity"
	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/domain/shopping"
)

// errCartDisabled is returned for every cart operation attempted by
// the administrator account.
var errCartDisabled = shared.NewDomainError("FORBIDDEN", "Cart is disabled for the administrator account")

// CartService handles cart use cases.
// Every mutation is confirmed by the repository before any state
// becomes visible to the caller; a failed write changes nothing.
type CartService struct {
	cart     shopping.CartRepository
	products catalog.ProductRepository
	users    identity.UserRepository
	logger   *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	cart shopping.CartRepository,
	products catalog.ProductRepository,
	users identity.UserRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		cart:     cart,
		products: products,
		users:    users,
		logger:   logger,
	}
}

// AddToCart adds a product to the user's cart.
// Adding a product already in the cart accumulates onto its line.
func (s *CartService) AddToCart(ctx context.Context, userID uuid.UUID, req AddToCartRequest) (*CartItemDTO, error) {
	if err := s.ensureNotAdministrator(ctx, userID); err != nil {
		return nil, err
	}

	product, err := s.products.FindByArticle(ctx, req.Article)
	if err != nil {
		return nil, err
	}

	item, err := s.cart.FindByUserAndArticle(ctx, userID, product.Article)
	switch {
	case err == nil:
		if err := item.AddQuantity(req.Quantity); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		item, err = shopping.NewCartItem(userID, product.Article, req.Quantity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.cart.Save(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Debug("cart item saved",
		zap.String("user_id", userID.String()),
		zap.String("article", item.Article),
		zap.Int("quantity", item.Quantity))

	return s.toCartItemDTO(item, product), nil
}

// UpdateQuantity replaces a line's quantity.
// A quantity of zero or less removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, article string, quantity int) (*CartItemDTO, error) {
	if err := s.ensureNotAdministrator(ctx, userID); err != nil {
		return nil, err
	}

	if quantity <= 0 {
		if err := s.cart.DeleteByUserAndArticle(ctx, userID, article); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item, err := s.cart.FindByUserAndArticle(ctx, userID, article)
	if err != nil {
		return nil, err
	}
	if err := item.SetQuantity(quantity); err != nil {
		return nil, err
	}
	if err := s.cart.Save(ctx, item); err != nil {
		return nil, err
	}

	product, err := s.products.FindByArticle(ctx, article)
	if err != nil {
		return nil, err
	}
	return s.toCartItemDTO(item, product), nil
}

// RemoveFromCart deletes one line from the user's cart
func (s *CartService) RemoveFromCart(ctx context.Context, userID uuid.UUID, article string) error {
	if err := s.ensureNotAdministrator(ctx, userID); err != nil {
		return err
	}
	return s.cart.DeleteByUserAndArticle(ctx, userID, article)
}

// ClearCart deletes every line of the user's cart
func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.ensureNotAdministrator(ctx, userID); err != nil {
		return err
	}
	return s.cart.DeleteByUser(ctx, userID)
}

// GetCart returns the user's cart with the total recomputed from
// scratch over all lines.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	if err := s.ensureNotAdministrator(ctx, userID); err != nil {
		return nil, err
	}

	items, err := s.cart.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dto := &CartDTO{Items: make([]CartItemDTO, 0, len(items))}
	total := decimal.Zero
	for i := range items {
		product, err := s.products.FindByArticle(ctx, items[i].Article)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				// Product removed from the catalog after it was carted;
				// the line is unsellable and is skipped.
				continue
			}
			return nil, err
		}
		itemDTO := s.toCartItemDTO(&items[i], product)
		dto.Items = append(dto.Items, *itemDTO)
		total = total.Add(shopping.LineTotal(product.Price, items[i].Quantity))
	}
	dto.Total = total.Round(2).StringFixed(2)

	return dto, nil
}

// ensureNotAdministrator rejects cart operations for the back-office account
func (s *CartService) ensureNotAdministrator(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAdministrator() {
		return errCartDisabled
	}
	return nil
}

func (s *CartService) toCartItemDTO(item *shopping.CartItem, product *catalog.Product) *CartItemDTO {
	return &CartItemDTO{
		Article:     item.Article,
		ProductName: product.Name,
		UnitPrice:   product.Price.StringFixed(2),
		Quantity:    item.Quantity,
		LineTotal:   shopping.LineTotal(product.Price, item.Quantity).StringFixed(2),
	}
}
