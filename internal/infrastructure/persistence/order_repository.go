package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sportshop/backend/internal/domain/identity"
	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/domain/shopping"
)

// GormOrderRepository implements shopping.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order without its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.Order, error) {
	var order shopping.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByIDWithItems finds an order with its item snapshots preloaded
func (r *GormOrderRepository) FindByIDWithItems(ctx context.Context, id uuid.UUID) (*shopping.Order, error) {
	var order shopping.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByUser finds a user's orders, newest first
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]shopping.Order, error) {
	var orders []shopping.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAll finds all orders matching the filter
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shopping.Order, error) {
	var orders []shopping.Order
	query := applyPagination(r.db.WithContext(ctx).Model(&shopping.Order{}), filter, OrderSortFields, "order_date DESC")

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order with its items
func (r *GormOrderRepository) Save(ctx context.Context, order *shopping.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// Delete deletes an order by ID; items cascade
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&shopping.Order{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts orders
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&shopping.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateFromCart persists the order, its item rows and the cart
// delete as one transaction. Either everything lands or nothing does.
func (r *GormOrderRepository) CreateFromCart(ctx context.Context, order *shopping.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Delete(&shopping.CartItem{}, "user_id = ?", order.UserID).Error
	})
}

var _ shopping.OrderRepository = (*GormOrderRepository)(nil)

// GormSalesReportRepository implements shopping.SalesReportRepository
// with a raw aggregation query.
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// DailySales aggregates completed orders per calendar day over an
// optional inclusive date range. Orders placed by administrator
// accounts are excluded via the role join.
func (r *GormSalesReportRepository) DailySales(ctx context.Context, from, to *time.Time) ([]shopping.DailySales, error) {
	query := r.db.WithContext(ctx).
		Model(&shopping.Order{}).
		Select("DATE(orders.order_date) AS date, COUNT(*) AS order_count, SUM(orders.total) AS total").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.status = ?", shopping.OrderStatusCompleted).
		Where("users.role <> ?", identity.RoleAdministrator)

	if from != nil {
		query = query.Where("DATE(orders.order_date) >= DATE(?)", *from)
	}
	if to != nil {
		query = query.Where("DATE(orders.order_date) <= DATE(?)", *to)
	}

	var rows []shopping.DailySales
	if err := query.
		Group("DATE(orders.order_date)").
		Order("date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var _ shopping.SalesReportRepository = (*GormSalesReportRepository)(nil)
