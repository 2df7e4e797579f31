package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/domain/shopping"
)

// GormCartRepository implements shopping.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByUserAndArticle finds one cart line
func (r *GormCartRepository) FindByUserAndArticle(ctx context.Context, userID uuid.UUID, article string) (*shopping.CartItem, error) {
	var item shopping.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND article = ?", userID, strings.TrimSpace(article)).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByUser finds every line of a user's cart
func (r *GormCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]shopping.CartItem, error) {
	var items []shopping.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a cart line
func (r *GormCartRepository) Save(ctx context.Context, item *shopping.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteByUserAndArticle deletes one cart line.
// Deleting a line that does not exist is not an error.
func (r *GormCartRepository) DeleteByUserAndArticle(ctx context.Context, userID uuid.UUID, article string) error {
	return r.db.WithContext(ctx).
		Delete(&shopping.CartItem{}, "user_id = ? AND article = ?", userID, strings.TrimSpace(article)).Error
}

// DeleteByUser deletes every line of a user's cart
func (r *GormCartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&shopping.CartItem{}, "user_id = ?", userID).Error
}

var _ shopping.CartRepository = (*GormCartRepository)(nil)
