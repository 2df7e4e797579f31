package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/sportshop/backend/internal/domain/shared"
)

// ProductRepository defines the contract for product persistence
type ProductRepository interface {
	shared.Repository[Product]
	FindByArticle(ctx context.Context, article string) (*Product, error)
	DeleteByArticle(ctx context.Context, article string) error
}

// BrandRepository defines the contract for brand persistence
type BrandRepository interface {
	shared.Repository[Brand]
	FindByName(ctx context.Context, name string) (*Brand, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Brand, error)
}
