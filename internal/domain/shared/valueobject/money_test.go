package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromFloat(10.50), RUB)
	require.NoError(t, err)
	assert.Equal(t, "10.50", m.StringFixed(2))
	assert.Equal(t, RUB, m.Currency())

	_, err = NewMoney(decimal.Zero, "")
	assert.Error(t, err)
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1234.56", RUB)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", m.StringFixed(2))

	_, err = NewMoneyFromString("not-a-number", RUB)
	assert.Error(t, err)
}

func TestMoneyAdd(t *testing.T) {
	a := NewMoneyRUB(decimal.NewFromFloat(10.25))
	b := NewMoneyRUB(decimal.NewFromFloat(5.25))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "15.50", sum.StringFixed(2))

	usd, _ := NewMoney(decimal.NewFromInt(1), USD)
	_, err = a.Add(usd)
	assert.Error(t, err)
}

func TestMoneyMultiply(t *testing.T) {
	price := NewMoneyRUB(decimal.NewFromFloat(10.25))
	total := price.MultiplyByInt(2).Round(2)
	assert.Equal(t, "20.50", total.StringFixed(2))
}

func TestMoneyEquals(t *testing.T) {
	a, _ := NewMoneyRUBFromString("9.99")
	b, _ := NewMoneyRUBFromString("9.99")
	c, _ := NewMoneyRUBFromString("10.00")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("42.75"))
	assert.Equal(t, "42.75", m.StringFixed(2))
	assert.Equal(t, DefaultCurrency, m.Currency())

	var nilMoney Money
	require.NoError(t, nilMoney.Scan(nil))
	assert.True(t, nilMoney.IsZero())

	assert.Error(t, m.Scan(struct{}{}))
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := NewMoneyRUB(decimal.NewFromFloat(19.90))
	data, err := m.MarshalJSON()
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.True(t, m.Equals(decoded))
}
