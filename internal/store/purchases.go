package store

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-retail-pos/internal/models"
)

// RecordPurchase writes the purchase header, its lines, and every affected
// product's new cost basis and stock atomically. The exchange rate and
// profit margin are read once, up front, and frozen into the row: a later
// rate change never rewrites a recorded purchase.
//
// Costing is per line and last-line-wins: a product restocked twice in one
// purchase ends up with the cost of the last line that touched it. The most
// recent purchase price is the one that matters for markup, so the store
// does not average across mixed-price restocks.
func (s *Store) RecordPurchase(purchase *models.Purchase, lines []models.PurchaseLine) error {
	rate := s.ExchangeRate()
	margin := s.ProfitMargin()

	var totalForeign float64
	for _, line := range lines {
		totalForeign += line.Subtotal()
	}
	purchase.TotalForeign = totalForeign
	purchase.TotalLocal = totalForeign * rate
	if purchase.Date.IsZero() {
		purchase.Date = time.Now()
	}
	if purchase.Status == "" {
		purchase.Status = models.StatusCompleted
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		purchase.Lines = nil
		if err := tx.Create(purchase).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].PurchaseID = purchase.ID
			if lines[i].PurchaseMode == "" {
				lines[i].PurchaseMode = models.PurchaseModeUnit
			}
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
			if lines[i].ProductID != nil {
				if err := applyPurchaseLine(tx, *lines[i].ProductID, lines[i], margin); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Best-effort, same contract as the sale path.
	if err := s.IncrementContactOperations(purchase.SupplierID); err != nil {
		zap.L().Warn("purchase committed but operation count not incremented",
			zap.String("invoice", purchase.InvoiceNumber), zap.Error(err))
	}
	return nil
}

// applyPurchaseLine recomputes a product's cost basis, sale price, and
// stock from one purchase line, inside the purchase transaction.
//
// Bulk lines are priced per container: the unit cost divides out
// UnitsPerBulk and the stock delta multiplies it back in. Unit lines go the
// other way. Stock is always kept in base units.
func applyPurchaseLine(tx *gorm.DB, productID uint, line models.PurchaseLine, margin float64) error {
	var product models.Product
	if err := tx.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The line keeps whatever id it named; there is just no
			// catalog row to reprice.
			return nil
		}
		return err
	}

	var unitCost, bulkCost float64
	var unitsToAdd int

	if line.PurchaseMode == models.PurchaseModeBulk {
		bulkCost = line.UnitPrice
		if product.UnitsPerBulk > 0 {
			unitCost = line.UnitPrice / float64(product.UnitsPerBulk)
		} else {
			unitCost = line.UnitPrice
		}
		unitsToAdd = line.Quantity * product.UnitsPerBulk
	} else {
		unitCost = line.UnitPrice
		bulkCost = line.UnitPrice * float64(product.UnitsPerBulk)
		unitsToAdd = line.Quantity
	}

	salePrice := unitCost * (1 + margin)

	return tx.Model(&models.Product{}).Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"bulk_cost":  bulkCost,
			"unit_cost":  unitCost,
			"cost_price": unitCost, // legacy alias stays in sync
			"sale_price": salePrice,
			"stock":      product.Stock + unitsToAdd,
		}).Error
}

// ListPurchases returns the most recent purchases, newest first.
func (s *Store) ListPurchases(limit int) ([]models.Purchase, error) {
	if limit <= 0 {
		limit = 50
	}
	var purchases []models.Purchase
	err := s.db.Order("date DESC").Limit(limit).Find(&purchases).Error
	return purchases, err
}

// PurchaseLines returns the line items of one purchase.
func (s *Store) PurchaseLines(purchaseID uint) ([]models.PurchaseLine, error) {
	var lines []models.PurchaseLine
	err := s.db.Where("purchase_id = ?", purchaseID).Order("id").Find(&lines).Error
	return lines, err
}
