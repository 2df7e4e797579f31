package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sportshop/backend/internal/domain/catalog"
	"github.com/sportshop/backend/internal/domain/shared"
)

// BrandService handles brand use cases
type BrandService struct {
	brands catalog.BrandRepository
	logger *zap.Logger
}

// NewBrandService creates a new brand service
func NewBrandService(brands catalog.BrandRepository, logger *zap.Logger) *BrandService {
	return &BrandService{
		brands: brands,
		logger: logger,
	}
}

// CreateBrand adds a brand. Brand names are unique.
func (s *BrandService) CreateBrand(ctx context.Context, req CreateBrandRequest) (*BrandDTO, error) {
	existing, err := s.brands.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A brand with this name already exists")
	}

	brand, err := catalog.NewBrand(req.Name, req.ImageURL)
	if err != nil {
		return nil, err
	}

	if err := s.brands.Save(ctx, brand); err != nil {
		return nil, err
	}

	s.logger.Info("brand created", zap.String("name", brand.Name))
	return toBrandDTO(brand), nil
}

// ListBrands returns every brand
func (s *BrandService) ListBrands(ctx context.Context) ([]BrandDTO, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 1000
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	brands, err := s.brands.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]BrandDTO, 0, len(brands))
	for i := range brands {
		dtos = append(dtos, *toBrandDTO(&brands[i]))
	}
	return dtos, nil
}

// GetBrandsByIDs resolves a set of brand ids to brands.
// Unknown ids are silently dropped, matching the filter semantics.
func (s *BrandService) GetBrandsByIDs(ctx context.Context, ids []uuid.UUID) ([]BrandDTO, error) {
	if len(ids) == 0 {
		return []BrandDTO{}, nil
	}

	brands, err := s.brands.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	dtos := make([]BrandDTO, 0, len(brands))
	for i := range brands {
		dtos = append(dtos, *toBrandDTO(&brands[i]))
	}
	return dtos, nil
}
