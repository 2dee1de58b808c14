package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-retail-pos/internal/models"
)

func TestRecordSaleAssignsSequentialInvoiceNumbers(t *testing.T) {
	s := newTestStore(t)

	for i := 1; i <= 3; i++ {
		sale := models.Sale{Total: float64(i)}
		require.NoError(t, s.RecordSale(&sale, nil))
		assert.Equal(t, fmt.Sprintf("V-%06d", i), sale.InvoiceNumber)
	}
}

func TestRecordSaleDefaultsAndSnapshots(t *testing.T) {
	s := newTestStore(t)

	sale := models.Sale{Subtotal: 7.50, Total: 8.70}
	lines := []models.SaleLine{
		{ProductID: 1, ProductName: "Harina Pan 1kg", Quantity: 3, UnitPrice: 2.50},
	}
	require.NoError(t, s.RecordSale(&sale, lines))

	assert.Equal(t, models.DefaultCustomerName, sale.CustomerName)
	assert.Equal(t, models.StatusCompleted, sale.Status)
	assert.False(t, sale.Date.IsZero())

	stored, err := s.SaleLines(sale.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, sale.ID, stored[0].SaleID)
	assert.Equal(t, "Harina Pan 1kg", stored[0].ProductName)
	assert.InDelta(t, 7.50, stored[0].Subtotal(), 1e-9)

	count, err := s.SaleItemCount(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRecordSaleBumpsCustomerOperationCount(t *testing.T) {
	s := newTestStore(t)

	c := models.Contact{Kind: models.ContactKindCustomer, Name: "Marta"}
	require.NoError(t, s.SaveContact(&c))

	require.NoError(t, s.RecordSale(&models.Sale{CustomerID: &c.ID}, nil))

	got, err := s.GetContact(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.OperationCount)
}

func TestRecordSaleRollsBackOnLineFailure(t *testing.T) {
	s := newTestStore(t)

	// Poison the line table so the second insert aborts mid-transaction.
	require.NoError(t, s.db.Exec(`
		CREATE TRIGGER poison_sale_lines BEFORE INSERT ON sale_lines
		WHEN NEW.product_name = 'poison'
		BEGIN SELECT RAISE(ABORT, 'poisoned'); END`).Error)

	sale := models.Sale{Total: 5}
	lines := []models.SaleLine{
		{ProductID: 1, ProductName: "fine", Quantity: 1, UnitPrice: 2.50},
		{ProductID: 2, ProductName: "poison", Quantity: 1, UnitPrice: 2.50},
	}
	require.Error(t, s.RecordSale(&sale, lines))

	// Nothing committed: no header, no lines, and the invoice sequence
	// restarts from 1 on the next sale.
	var headers, saved int64
	require.NoError(t, s.db.Model(&models.Sale{}).Count(&headers).Error)
	require.NoError(t, s.db.Model(&models.SaleLine{}).Count(&saved).Error)
	assert.Zero(t, headers)
	assert.Zero(t, saved)

	next := models.Sale{Total: 1}
	require.NoError(t, s.RecordSale(&next, nil))
	assert.Equal(t, "V-000001", next.InvoiceNumber)
}

func TestTodaysSalesSummary(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.RecordSale(&models.Sale{Total: 10}, nil))
	require.NoError(t, s.RecordSale(&models.Sale{Total: 5.5}, nil))
	require.NoError(t, s.RecordSale(&models.Sale{Total: 99, Date: time.Now().AddDate(0, 0, -1)}, nil))

	total, transactions, err := s.TodaysSalesSummary()
	require.NoError(t, err)
	assert.InDelta(t, 15.5, total, 1e-9)
	assert.EqualValues(t, 2, transactions)
}

func TestListSalesNewestFirst(t *testing.T) {
	s := newTestStore(t)

	old := models.Sale{Total: 1, Date: time.Now().Add(-time.Hour)}
	recent := models.Sale{Total: 2}
	require.NoError(t, s.RecordSale(&old, nil))
	require.NoError(t, s.RecordSale(&recent, nil))

	sales, err := s.ListSales(0)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, recent.ID, sales[0].ID)

	one, err := s.ListSales(1)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}
