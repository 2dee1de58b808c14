package store

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-retail-pos/internal/models"
)

// RecordSale writes the sale header and its lines atomically and fills in
// the generated invoice number and assigned ids. Either everything commits
// or nothing does.
//
// Stock is NOT touched here: the counter flow issues AdjustStock per line
// after the sale commits, mirroring how the register has always worked. A
// crash between commit and adjustment leaves stock stale relative to the
// recorded sale; RecalculateContactOperations has no equivalent for stock,
// so callers wanting strict consistency must fold the adjustment into a
// wrapper of their own.
//
// Lines are not validated here - an empty list or a dangling product id is
// recorded as given. Input validation belongs to the caller.
func (s *Store) RecordSale(sale *models.Sale, lines []models.SaleLine) error {
	if sale.Date.IsZero() {
		sale.Date = time.Now()
	}
	if sale.Status == "" {
		sale.Status = models.StatusCompleted
	}
	if sale.CustomerName == "" {
		sale.CustomerName = models.DefaultCustomerName
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Next invoice number from the sequential id. Read-then-use is
		// only safe under the single-writer assumption.
		var nextID int64
		if err := tx.Model(&models.Sale{}).
			Select("COALESCE(MAX(id), 0) + 1").Scan(&nextID).Error; err != nil {
			return err
		}
		sale.InvoiceNumber = fmt.Sprintf("V-%06d", nextID)

		sale.Lines = nil
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].SaleID = sale.ID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Best-effort: the sale is already committed, so a failure here only
	// drifts the counter, which RecalculateContactOperations repairs.
	if err := s.IncrementContactOperations(sale.CustomerID); err != nil {
		zap.L().Warn("sale committed but operation count not incremented",
			zap.String("invoice", sale.InvoiceNumber), zap.Error(err))
	}
	return nil
}

// ListSales returns the most recent sales, newest first. A non-positive
// limit means the default page of 50.
func (s *Store) ListSales(limit int) ([]models.Sale, error) {
	if limit <= 0 {
		limit = 50
	}
	var sales []models.Sale
	err := s.db.Order("date DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

// RecentSales returns the last n sales for the dashboard ticker.
func (s *Store) RecentSales(n int) ([]models.Sale, error) {
	if n <= 0 {
		n = 10
	}
	var sales []models.Sale
	err := s.db.Order("date DESC").Limit(n).Find(&sales).Error
	return sales, err
}

// SaleLines returns the line items of one sale in insertion order.
func (s *Store) SaleLines(saleID uint) ([]models.SaleLine, error) {
	var lines []models.SaleLine
	err := s.db.Where("sale_id = ?", saleID).Order("id").Find(&lines).Error
	return lines, err
}

// SaleItemCount sums the quantities across a sale's lines.
func (s *Store) SaleItemCount(saleID uint) (int, error) {
	var count int
	err := s.db.Model(&models.SaleLine{}).
		Where("sale_id = ?", saleID).
		Select("COALESCE(SUM(quantity), 0)").Scan(&count).Error
	return count, err
}

// TodaysSalesSummary totals today's completed sales.
func (s *Store) TodaysSalesSummary() (total float64, transactions int64, err error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var row struct {
		Total float64
		Count int64
	}
	err = s.db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS count").
		Where("date >= ? AND date < ? AND status = ?", dayStart, dayEnd, models.StatusCompleted).
		Scan(&row).Error
	return row.Total, row.Count, err
}
