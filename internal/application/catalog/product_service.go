package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/sportshop/backend/internal/domain/catalog"
	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/domain/shared/valueobject"
)

// ProductService handles product catalog use cases
type ProductService struct {
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(products catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		products: products,
		logger:   logger,
	}
}

// CreateProduct adds a product to the catalog.
// The article must be unique across the whole catalog.
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductDTO, error) {
	existing, err := s.products.FindByArticle(ctx, req.Article)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this article already exists")
	}

	price, err := valueobject.NewMoneyRUBFromString(req.Price)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be a decimal number")
	}

	product, err := catalog.NewProduct(req.Article, req.Name, req.Category, price)
	if err != nil {
		return nil, err
	}
	product.SetBrand(req.Brand)
	product.Description = req.Description
	product.SetImageURL(req.ImageURL)
	product.SetAttributes(req.Material, req.Color, req.Size, req.Country, req.Gender, req.Season)

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("article", product.Article),
		zap.String("category", product.Category))

	return toProductDTO(product), nil
}

// GetProduct returns one product by article
func (s *ProductService) GetProduct(ctx context.Context, article string) (*ProductDTO, error) {
	product, err := s.products.FindByArticle(ctx, article)
	if err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

// ListProducts returns a page of the catalog
func (s *ProductService) ListProducts(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductDTO], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 200 {
		filter.PageSize = 50
	}

	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, *toProductDTO(&products[i]))
	}

	result := shared.NewPaginated(dtos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// FilterCatalog loads the full catalog and applies the session's
// filter selections to it.
func (s *ProductService) FilterCatalog(ctx context.Context, f *ProductFilter) ([]ProductDTO, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 10000

	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	filtered := f.FilterProducts(products)
	dtos := make([]ProductDTO, 0, len(filtered))
	for i := range filtered {
		dtos = append(dtos, *toProductDTO(&filtered[i]))
	}
	return dtos, nil
}

// DeleteProduct removes a product from the catalog by article
func (s *ProductService) DeleteProduct(ctx context.Context, article string) error {
	if _, err := s.products.FindByArticle(ctx, article); err != nil {
		return err
	}

	if err := s.products.DeleteByArticle(ctx, article); err != nil {
		return err
	}

	s.logger.Info("product deleted", zap.String("article", article))
	return nil
}

// Categories returns the fixed department list in display order
func (s *ProductService) Categories() []string {
	return append([]string(nil), catalog.Categories...)
}
