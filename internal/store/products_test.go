package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-retail-pos/internal/models"
)

func TestSaveProductOverwritesZeroValues(t *testing.T) {
	s := newTestStore(t)

	p := models.Product{Code: "P-1", Name: "Harina", UnitCost: 2.0, CostPrice: 2.0, SalePrice: 2.5, Stock: 10, UnitsPerBulk: 1, UnitOfMeasure: "Unit", StockMinimum: 5}
	require.NoError(t, s.SaveProduct(&p))
	require.NotZero(t, p.ID)

	p.Stock = 0
	p.SalePrice = 0
	require.NoError(t, s.SaveProduct(&p))

	got, err := s.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
	assert.Equal(t, 0.0, got.SalePrice)
}

func TestAdjustStockAllowsNegative(t *testing.T) {
	s := newTestStore(t)

	p := models.Product{Code: "P-2", Name: "Azúcar", Stock: 50}
	require.NoError(t, s.SaveProduct(&p))

	// Counter flow: sell 3 units, then oversell past zero.
	require.NoError(t, s.AdjustStock(p.ID, -3))
	got, err := s.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 47, got.Stock)

	require.NoError(t, s.AdjustStock(p.ID, -50))
	got, err = s.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, -3, got.Stock)
}

func TestProductStatsCountsLowStock(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveProduct(&models.Product{Code: "A", Name: "A", Stock: 100, StockMinimum: 5}))
	require.NoError(t, s.SaveProduct(&models.Product{Code: "B", Name: "B", Stock: 5, StockMinimum: 5}))  // at threshold counts
	require.NoError(t, s.SaveProduct(&models.Product{Code: "C", Name: "C", Stock: 0, StockMinimum: 5}))

	total, low, err := s.ProductStats()
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.EqualValues(t, 2, low)
}

func TestFindProductByCode(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveProduct(&models.Product{Code: "XYZ", Name: "Pasta"}))

	got, err := s.FindProductByCode("XYZ")
	require.NoError(t, err)
	assert.Equal(t, "Pasta", got.Name)

	_, err = s.FindProductByCode("missing")
	assert.Error(t, err)
}

func TestInsertProductIgnoresCallerID(t *testing.T) {
	s := newTestStore(t)

	p := models.Product{ID: 999, Code: "N-1", Name: "Nuevo"}
	require.NoError(t, s.InsertProduct(&p))

	all, err := s.ListProducts()
	require.NoError(t, err)
	require.Len(t, all, 1)
}
