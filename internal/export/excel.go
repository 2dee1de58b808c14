// Package export moves the catalog and the sales ledger in and out of the
// store as Excel workbooks or CSV. It is a read-mostly collaborator: the
// only writes it performs go through the catalog's save operations, and
// imported rows without an explicit sale price get the same margin formula
// the purchase path applies.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"go-retail-pos/internal/models"
	"go-retail-pos/internal/store"
)

const productsSheet = "Products"
const salesSheet = "Sales"

var productHeaders = []string{"Code", "Name", "Category", "UnitCost", "Margin%", "SalePrice", "Stock", "UnitsPerBulk"}

type Exporter struct {
	store *store.Store
}

func New(s *store.Store) *Exporter {
	return &Exporter{store: s}
}

// ProductsWorkbook renders the full catalog into a workbook, one row per
// product, in the same column layout the import expects back.
func (e *Exporter) ProductsWorkbook() (*excelize.File, error) {
	products, err := e.store.ListProducts()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", productsSheet)
	for col, header := range productHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(productsSheet, cell, header)
	}
	for i, p := range products {
		row := i + 2
		values := []interface{}{p.Code, p.Name, p.Category, p.UnitCost, "", p.SalePrice, p.Stock, p.UnitsPerBulk}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(productsSheet, cell, v)
		}
	}
	return f, nil
}

// SalesWorkbook renders the most recent sales (headers only), newest first.
func (e *Exporter) SalesWorkbook(limit int) (*excelize.File, error) {
	sales, err := e.store.ListSales(limit)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", salesSheet)
	headers := []string{"Invoice", "Customer", "Date", "Subtotal", "Discount", "Total", "Payment", "Status"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(salesSheet, cell, header)
	}
	for i, s := range sales {
		row := i + 2
		values := []interface{}{
			s.InvoiceNumber, s.CustomerName, s.Date.Format("2006-01-02 15:04:05"),
			s.Subtotal, s.Discount, s.Total, s.PaymentMethod, s.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(salesSheet, cell, v)
		}
	}
	return f, nil
}

// ImportProductsExcel reads rows in the ProductsWorkbook layout from the
// first sheet and writes them into the catalog. Returns how many rows were
// imported. Rows missing a code or name are skipped, not fatal.
func (e *Exporter) ImportProductsExcel(r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, err
	}
	if len(rows) < 2 {
		return 0, nil
	}

	imported := 0
	for _, row := range rows[1:] {
		if err := e.importRow(row); err != nil {
			return imported, err
		} else if len(row) >= 2 && strings.TrimSpace(row[0]) != "" && strings.TrimSpace(row[1]) != "" {
			imported++
		}
	}
	return imported, nil
}

// importRow maps one spreadsheet row onto the catalog. When the sheet
// leaves SalePrice blank the price is derived from the cost and the margin
// column, or from the configured system margin when both are missing -
// the same formula the purchase transaction uses.
func (e *Exporter) importRow(row []string) error {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	code, name := get(0), get(1)
	if code == "" || name == "" {
		return nil
	}

	unitCost, _ := strconv.ParseFloat(get(3), 64)

	salePrice, _ := strconv.ParseFloat(get(5), 64)
	if salePrice == 0 {
		margin := e.store.ProfitMargin()
		if m, err := strconv.ParseFloat(get(4), 64); err == nil && m > 0 {
			margin = m / 100
		}
		salePrice = unitCost * (1 + margin)
	}

	stock, _ := strconv.Atoi(get(6))
	unitsPerBulk, _ := strconv.Atoi(get(7))
	if unitsPerBulk < 1 {
		unitsPerBulk = 1
	}

	product := models.Product{
		Code:          code,
		Name:          name,
		Category:      get(2),
		UnitOfMeasure: "Unit",
		UnitsPerBulk:  unitsPerBulk,
		UnitCost:      unitCost,
		CostPrice:     unitCost,
		SalePrice:     salePrice,
		Stock:         stock,
		StockMinimum:  5,
	}

	if existing, err := e.store.FindProductByCode(code); err == nil {
		product.ID = existing.ID
		product.StockMinimum = existing.StockMinimum
		return e.store.UpdateProduct(&product)
	}
	return e.store.InsertProduct(&product)
}
