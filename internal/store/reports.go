package store

import (
	"time"

	"go-retail-pos/internal/models"
)

// SalesSummary holds aggregate revenue figures for a period.
type SalesSummary struct {
	TotalRevenue float64
	TotalCount   int64
}

// SalesSummaryBetween totals completed sales within [start, end).
func (s *Store) SalesSummaryBetween(start, end time.Time) (*SalesSummary, error) {
	var result SalesSummary

	err := s.db.Model(&models.Sale{}).
		Where("date >= ? AND date < ? AND status = ?", start, end, models.StatusCompleted).
		Select("COALESCE(SUM(total), 0)").
		Scan(&result.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Sale{}).
		Where("date >= ? AND date < ? AND status = ?", start, end, models.StatusCompleted).
		Count(&result.TotalCount).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// LowStockProducts lists products at or below their reorder threshold,
// most depleted first.
func (s *Store) LowStockProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("stock <= stock_minimum").Order("stock").Find(&products).Error
	return products, err
}
