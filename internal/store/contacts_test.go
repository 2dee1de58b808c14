package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-retail-pos/internal/models"
)

func TestSaveContactInsertAndUpdate(t *testing.T) {
	s := newTestStore(t)

	c := models.Contact{Kind: models.ContactKindCustomer, Name: "Ana Torres", Phone: "0412-0000000"}
	require.NoError(t, s.SaveContact(&c))
	require.NotZero(t, c.ID)

	c.Name = "Ana T. Torres"
	c.Phone = "" // zero values overwrite on update
	require.NoError(t, s.SaveContact(&c))

	got, err := s.GetContact(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana T. Torres", got.Name)
	assert.Equal(t, "", got.Phone)
}

func TestListContactsFiltersByKind(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveContact(&models.Contact{Kind: models.ContactKindCustomer, Name: "Zoila"}))
	require.NoError(t, s.SaveContact(&models.Contact{Kind: models.ContactKindSupplier, Name: "Acme"}))
	require.NoError(t, s.SaveContact(&models.Contact{Kind: models.ContactKindCustomer, Name: "Alberto"}))

	customers, err := s.ListContacts(models.ContactKindCustomer)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	// Ordered by name.
	assert.Equal(t, "Alberto", customers[0].Name)
	assert.Equal(t, "Zoila", customers[1].Name)

	all, err := s.ListContacts("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestIncrementContactOperations(t *testing.T) {
	s := newTestStore(t)

	c := models.Contact{Kind: models.ContactKindCustomer, Name: "Pedro"}
	require.NoError(t, s.SaveContact(&c))

	require.NoError(t, s.IncrementContactOperations(&c.ID))
	require.NoError(t, s.IncrementContactOperations(&c.ID))
	require.NoError(t, s.IncrementContactOperations(nil)) // no-op

	got, err := s.GetContact(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.OperationCount)

	// SaveContact must never touch the counter.
	got.Name = "Pedro P."
	require.NoError(t, s.SaveContact(got))
	got, err = s.GetContact(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.OperationCount)
}

func TestRecalculateContactOperationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	customer := models.Contact{Kind: models.ContactKindCustomer, Name: "Luisa"}
	supplier := models.Contact{Kind: models.ContactKindSupplier, Name: "Proveedora Sur"}
	require.NoError(t, s.SaveContact(&customer))
	require.NoError(t, s.SaveContact(&supplier))

	// Two sales for the customer, one purchase from the supplier.
	for i := 0; i < 2; i++ {
		require.NoError(t, s.RecordSale(&models.Sale{CustomerID: &customer.ID}, nil))
	}
	require.NoError(t, s.RecordPurchase(&models.Purchase{SupplierID: &supplier.ID, InvoiceNumber: "F-100"}, nil))

	// Drift the counters on purpose.
	require.NoError(t, s.IncrementContactOperations(&customer.ID))

	require.NoError(t, s.RecalculateContactOperations())
	require.NoError(t, s.RecalculateContactOperations()) // repeat changes nothing

	gotCustomer, err := s.GetContact(customer.ID)
	require.NoError(t, err)
	gotSupplier, err := s.GetContact(supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, gotCustomer.OperationCount)
	assert.Equal(t, 1, gotSupplier.OperationCount)
}
