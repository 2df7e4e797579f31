package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/domain/shared/valueobject"
)

func mustMoney(t *testing.T, s string) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyRUBFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("SKU-100", "Велосипед горный", "Велоспорт", mustMoney(t, "15999.00"))
	require.NoError(t, err)
	assert.Equal(t, "SKU-100", p.Article)
	assert.Equal(t, "Велоспорт", p.Category)
	assert.Equal(t, "15999.00", p.Price.StringFixed(2))
	assert.Equal(t, 1, p.GetVersion())
	assert.False(t, p.HasBrand())
}

func TestNewProductValidation(t *testing.T) {
	price := mustMoney(t, "10.00")

	tests := []struct {
		name     string
		article  string
		prodName string
		category string
		price    valueobject.Money
		wantCode string
	}{
		{"empty article", "", "Name", "Велоспорт", price, "INVALID_ARTICLE"},
		{"empty name", "SKU-1", "", "Велоспорт", price, "INVALID_NAME"},
		{"unknown category", "SKU-1", "Name", "Электроника", price, "INVALID_CATEGORY"},
		{"zero price", "SKU-1", "Name", "Велоспорт", valueobject.ZeroRUB(), "INVALID_PRICE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.article, tt.prodName, tt.category, tt.price)
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
		})
	}
}

func TestProductSetBrand(t *testing.T) {
	p, err := NewProduct("SKU-100", "Кимоно", "Единоборства и бокс", mustMoney(t, "3500.00"))
	require.NoError(t, err)

	p.SetBrand("  Green Hill  ")
	assert.Equal(t, "Green Hill", p.Brand)
	assert.True(t, p.HasBrand())
	assert.Equal(t, 2, p.GetVersion())

	p.SetBrand("   ")
	assert.False(t, p.HasBrand())
}

func TestProductUpdatePrice(t *testing.T) {
	p, err := NewProduct("SKU-100", "Гантель", "Спортивный инвентарь", mustMoney(t, "990.00"))
	require.NoError(t, err)

	require.NoError(t, p.UpdatePrice(mustMoney(t, "1290.505")))
	assert.Equal(t, "1290.51", p.Price.StringFixed(2))

	err = p.UpdatePrice(valueobject.ZeroRUB())
	assert.Error(t, err)
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsValidCategory(c))
	}
	assert.False(t, IsValidCategory("Велоспорт "))
	assert.False(t, IsValidCategory(""))
}

func TestNewBrand(t *testing.T) {
	b, err := NewBrand(" Nike ", " https://cdn.example.com/nike.png ")
	require.NoError(t, err)
	assert.Equal(t, "Nike", b.Name)
	assert.Equal(t, "https://cdn.example.com/nike.png", b.ImageURL)

	_, err = NewBrand("   ", "")
	assert.Error(t, err)
}
