package models

import (
	"time"
)

// Contact kinds. Customers and suppliers share one table, same as the
// unified contact book the cashiers work with.
const (
	ContactKindCustomer = "Customer"
	ContactKindSupplier = "Supplier"
)

// Purchase modes for a purchase line. A "Bulk" line is priced per container
// and converted to base units through the product's UnitsPerBulk.
const (
	PurchaseModeUnit = "Unit"
	PurchaseModeBulk = "Bulk"
)

// Statuses shared by sales and purchases.
const StatusCompleted = "Completed"

// DefaultCustomerName is recorded on walk-in sales with no contact attached.
const DefaultCustomerName = "General Customer"

// User - a cashier or admin allowed to call the API
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	Role         string    `json:"role"` // 'admin' or 'cashier'
	CreatedAt    time.Time `json:"created_at"`
}

// Contact - unified customer/supplier record
type Contact struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Kind           string    `gorm:"size:20;default:Customer" json:"kind"`
	Name           string    `json:"name"`
	TaxID          string    `json:"tax_id"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	OperationCount int       `json:"operation_count"` // completed sales/purchases referencing this contact
	CreatedAt      time.Time `json:"created_at"`
}

// Product - the inventory. Stock is ALWAYS in base units, even for
// products bought by the box; conversion happens in the purchase path.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Code          string    `gorm:"uniqueIndex;size:50" json:"code"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	UnitOfMeasure string    `gorm:"size:30;default:Unit" json:"unit_of_measure"`
	UnitsPerBulk  int       `gorm:"default:1" json:"units_per_bulk"`
	BulkCost      float64   `json:"bulk_cost"`
	UnitCost      float64   `json:"unit_cost"`
	CostPrice     float64   `json:"cost_price"` // alias of UnitCost, kept for legacy rows
	SalePrice     float64   `json:"sale_price"`
	Stock         int       `json:"stock"`
	StockMinimum  int       `gorm:"default:5" json:"stock_minimum"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsBulk reports whether the unit of measure marks a multi-unit container.
func (p Product) IsBulk() bool {
	switch p.UnitOfMeasure {
	case "Bulk", "Box", "Package":
		return true
	}
	return false
}

// Sale - the transaction header. Immutable once committed.
type Sale struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	InvoiceNumber string     `gorm:"size:20" json:"invoice_number"`
	CustomerID    *uint      `json:"customer_id"` // nil means walk-in customer
	CustomerName  string     `json:"customer_name"`
	Date          time.Time  `json:"date"`
	Subtotal      float64    `json:"subtotal"`
	Discount      float64    `json:"discount"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	Status        string     `gorm:"size:20;default:Completed" json:"status"`
	Lines         []SaleLine `gorm:"foreignKey:SaleID" json:"lines,omitempty"`
}

// SaleLine - one product position in a sale, with name and price frozen
// at the moment of sale.
type SaleLine struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	SaleID      uint    `json:"sale_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Subtotal is the line amount at the frozen price.
func (l SaleLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// Purchase - restock header. TotalLocal is frozen at the exchange rate
// in effect when the purchase was recorded.
type Purchase struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	InvoiceNumber string         `gorm:"size:50" json:"invoice_number"` // supplied by the supplier's paperwork
	SupplierID    *uint          `json:"supplier_id"`
	SupplierName  string         `json:"supplier_name"`
	Date          time.Time      `json:"date"`
	TotalForeign  float64        `json:"total_foreign"` // USD
	TotalLocal    float64        `json:"total_local"`   // TotalForeign x exchange rate at purchase time
	Status        string         `gorm:"size:20;default:Completed" json:"status"`
	Lines         []PurchaseLine `gorm:"foreignKey:PurchaseID" json:"lines,omitempty"`
}

// PurchaseLine - one restock position. ProductID may be nil for goods
// that never made it into the catalog; UnitPrice is per the line's
// PurchaseMode, not necessarily per base unit.
type PurchaseLine struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	PurchaseID   uint    `json:"purchase_id"`
	ProductID    *uint   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	PurchaseMode string  `gorm:"size:10;default:Unit" json:"purchase_mode"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
}

// Subtotal is the line amount in the foreign currency.
func (l PurchaseLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// Setting - one key/value row of the configuration table.
type Setting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"uniqueIndex;size:50" json:"key"`
	Value string `json:"value"`
}
