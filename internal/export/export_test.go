package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-retail-pos/internal/store"
)

func newTestExporter(t *testing.T) (*Exporter, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return New(s), s
}

func TestImportProductsCSVInsertsAndDerivesPrice(t *testing.T) {
	e, s := newTestExporter(t)

	input := strings.Join([]string{
		"Code,Name,Category,UnitCost,Margin%,SalePrice,Stock,UnitsPerBulk",
		"T-1,Queso Blanco,Lácteos,2.00,,,12,1",    // price from the system margin (30%)
		"T-2,Galletas,Alimentos,1.00,50,,6,1",     // explicit margin column wins
		"T-3,Refresco Caja,Bebidas,2.00,,3.10,0,24", // explicit price wins over everything
		",Sin Código,,,,,,",                        // skipped, not fatal
	}, "\n")

	imported, err := e.ImportProductsCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, imported)

	p1, err := s.FindProductByCode("T-1")
	require.NoError(t, err)
	assert.InDelta(t, 2.60, p1.SalePrice, 1e-9)
	assert.Equal(t, 12, p1.Stock)

	p2, err := s.FindProductByCode("T-2")
	require.NoError(t, err)
	assert.InDelta(t, 1.50, p2.SalePrice, 1e-9)

	p3, err := s.FindProductByCode("T-3")
	require.NoError(t, err)
	assert.InDelta(t, 3.10, p3.SalePrice, 1e-9)
	assert.Equal(t, 24, p3.UnitsPerBulk)

	_, err = s.FindProductByCode("")
	assert.Error(t, err)
}

func TestImportProductsCSVUpdatesByCode(t *testing.T) {
	e, s := newTestExporter(t)

	// Code 001 is already in the catalog; the import must update it in
	// place, not insert a duplicate.
	before, err := s.FindProductByCode("001")
	require.NoError(t, err)

	input := "Code,Name,Category,UnitCost,Margin%,SalePrice,Stock,UnitsPerBulk\n" +
		"001,Harina Pan 1kg,Alimentos,2.20,,2.90,99,1\n"
	imported, err := e.ImportProductsCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	after, err := s.FindProductByCode("001")
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.InDelta(t, 2.90, after.SalePrice, 1e-9)
	assert.Equal(t, 99, after.Stock)
	assert.Equal(t, before.StockMinimum, after.StockMinimum) // threshold survives imports
}

func TestProductsWorkbookRoundTrip(t *testing.T) {
	e, s := newTestExporter(t)

	f, err := e.ProductsWorkbook()
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	// Import the export into a second, empty-catalog store.
	s2, err := store.Open(filepath.Join(t.TempDir(), "other.db"))
	require.NoError(t, err)
	defer s2.Close()
	e2 := New(s2)

	products, err := s.ListProducts()
	require.NoError(t, err)

	imported, err := e2.ImportProductsExcel(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, len(products), imported)

	for _, p := range products {
		got, err := s2.FindProductByCode(p.Code)
		require.NoError(t, err)
		assert.Equal(t, p.Name, got.Name)
		assert.InDelta(t, p.SalePrice, got.SalePrice, 1e-9)
		assert.Equal(t, p.Stock, got.Stock)
	}
}

func TestProductsCSVHeader(t *testing.T) {
	e, _ := newTestExporter(t)

	var out bytes.Buffer
	require.NoError(t, e.ProductsCSV(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "Code,Name,Category,UnitCost,Margin%,SalePrice,Stock,UnitsPerBulk", strings.TrimSpace(lines[0]))
	assert.Greater(t, len(lines), 1)
}
