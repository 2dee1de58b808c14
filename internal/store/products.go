package store

import (
	"gorm.io/gorm"

	"go-retail-pos/internal/models"
)

// ListProducts returns the full catalog ordered by name.
func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("name").Find(&products).Error
	return products, err
}

// GetProduct fetches one product by id.
func (s *Store) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// SaveProduct inserts when ID is zero, otherwise overwrites every editable
// field of the existing row, zero values included.
func (s *Store) SaveProduct(p *models.Product) error {
	if p.ID == 0 {
		return s.db.Create(p).Error
	}
	return s.db.Model(&models.Product{}).Where("id = ?", p.ID).
		Select("code", "name", "category", "unit_of_measure", "units_per_bulk",
			"bulk_cost", "unit_cost", "cost_price", "sale_price",
			"stock", "stock_minimum", "description").
		Updates(p).Error
}

// InsertProduct always creates a new row, whatever ID the caller left set.
func (s *Store) InsertProduct(p *models.Product) error {
	p.ID = 0
	return s.SaveProduct(p)
}

// UpdateProduct updates an existing row by its ID.
func (s *Store) UpdateProduct(p *models.Product) error {
	return s.SaveProduct(p)
}

// DeleteProduct removes a product unconditionally. Sale and purchase lines
// keep their product name snapshot.
func (s *Store) DeleteProduct(id uint) error {
	return s.db.Delete(&models.Product{}, id).Error
}

// AdjustStock applies a delta to a product's stock, negative deltas
// included. Stock may go negative: overselling is allowed at the counter
// and reconciled later.
func (s *Store) AdjustStock(id uint, delta int) error {
	return s.db.Model(&models.Product{}).Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta)).Error
}

// ProductStats reports the catalog size and how many products sit at or
// below their reorder threshold.
func (s *Store) ProductStats() (total int64, lowStock int64, err error) {
	if err = s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = s.db.Model(&models.Product{}).Where("stock <= stock_minimum").Count(&lowStock).Error; err != nil {
		return 0, 0, err
	}
	return total, lowStock, nil
}

// FindProductByCode looks a product up by its catalog code. Import paths
// use this to decide between updating an existing row and inserting.
func (s *Store) FindProductByCode(code string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("code = ?", code).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
