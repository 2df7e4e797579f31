package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sportshop/backend/internal/domain/catalog"
	"github.com/sportshop/backend/internal/domain/identity"
	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/domain/shared/valueobject"
	"github.com/sportshop/backend/internal/domain/shopping"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&catalog.Product{},
		&catalog.Brand{},
		&identity.User{},
		&identity.Credential{},
		&identity.Employee{},
		&shopping.CartItem{},
		&shopping.Order{},
		&shopping.OrderItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, article, name, price string) *catalog.Product {
	t.Helper()
	m, err := valueobject.NewMoneyRUBFromString(price)
	require.NoError(t, err)
	p, err := catalog.NewProduct(article, name, "Спортивный инвентарь", m)
	require.NoError(t, err)
	require.NoError(t, NewGormProductRepository(db).Save(context.Background(), p))
	return p
}

func seedUser(t *testing.T, db *gorm.DB, username string, role identity.Role) *identity.User {
	t.Helper()
	u, err := identity.NewUser(username, username+"@example.com", "Имя", "Фамилия", role)
	require.NoError(t, err)
	require.NoError(t, NewGormUserRepository(db).Save(context.Background(), u))
	return u
}

func TestProductRepositoryFindByArticle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "SKU-1", "Мяч", "100.00")

	found, err := repo.FindByArticle(ctx, "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, "Мяч", found.Name)

	_, err = repo.FindByArticle(ctx, "MISSING")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductRepositoryDeleteByArticle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "SKU-1", "Мяч", "100.00")

	require.NoError(t, repo.DeleteByArticle(ctx, "SKU-1"))
	_, err := repo.FindByArticle(ctx, "SKU-1")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteByArticle(ctx, "SKU-1"), shared.ErrNotFound)
}

func TestBrandRepositoryFindByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBrandRepository(db)
	ctx := context.Background()

	b1, err := catalog.NewBrand("BrandX", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, b1))

	found, err := repo.FindByIDs(ctx, []uuid.UUID{b1.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "BrandX", found[0].Name)

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUserRepositoryCreateWithCredential(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("ivanov", "ivanov@example.com", "Иван", "Иванов", identity.RoleCustomer)
	require.NoError(t, err)
	credential, err := identity.NewCredential(user.ID, "secret123")
	require.NoError(t, err)

	require.NoError(t, repo.CreateWithCredential(ctx, user, credential))

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stored, err := repo.FindCredential(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.VerifyPassword("secret123"))
}

func TestCartRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCartRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "buyer", identity.RoleCustomer)

	item, err := shopping.NewCartItem(user.ID, "SKU-1", 2)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, item))

	found, err := repo.FindByUserAndArticle(ctx, user.ID, "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, 2, found.Quantity)

	require.NoError(t, found.AddQuantity(3))
	require.NoError(t, repo.Save(ctx, found))

	items, err := repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	// Deleting a missing line is not an error
	require.NoError(t, repo.DeleteByUserAndArticle(ctx, user.ID, "GHOST"))

	require.NoError(t, repo.DeleteByUser(ctx, user.ID))
	items, err = repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderRepositoryCreateFromCart(t *testing.T) {
	db := setupTestDB(t)
	orders := NewGormOrderRepository(db)
	cart := NewGormCartRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "buyer", identity.RoleCustomer)
	p1 := seedProduct(t, db, "SKU-1", "Мяч", "10.25")
	p2 := seedProduct(t, db, "SKU-2", "Скакалка", "5.00")

	for article, qty := range map[string]int{"SKU-1": 2, "SKU-2": 1} {
		item, err := shopping.NewCartItem(user.ID, article, qty)
		require.NoError(t, err)
		require.NoError(t, cart.Save(ctx, item))
	}

	order, err := shopping.NewOrder(user.ID, []shopping.OrderLine{
		{Article: p1.Article, ProductName: p1.Name, UnitPrice: p1.Price, Quantity: 2},
		{Article: p2.Article, ProductName: p2.Name, UnitPrice: p2.Price, Quantity: 1},
	})
	require.NoError(t, err)

	require.NoError(t, orders.CreateFromCart(ctx, order))

	// Order with item snapshots landed
	stored, err := orders.FindByIDWithItems(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "25.50", stored.Total.StringFixed(2))
	assert.Len(t, stored.Items, 2)

	// Cart is empty afterwards
	items, err := cart.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderRepositoryFindByUser(t *testing.T) {
	db := setupTestDB(t)
	orders := NewGormOrderRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "buyer", identity.RoleCustomer)
	p := seedProduct(t, db, "SKU-1", "Мяч", "10.00")

	for i := 0; i < 2; i++ {
		order, err := shopping.NewOrder(user.ID, []shopping.OrderLine{
			{Article: p.Article, ProductName: p.Name, UnitPrice: p.Price, Quantity: 1},
		})
		require.NoError(t, err)
		require.NoError(t, orders.CreateFromCart(ctx, order))
	}

	list, err := orders.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestEmployeeRepositoryFindByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormEmployeeRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "staff", identity.RoleCustomer)
	employee, err := identity.NewEmployee(user.ID, "Кассир", time.Time{})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, employee))

	found, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Кассир", found.Position)

	_, err = repo.FindByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
