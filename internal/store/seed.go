package store

import (
	"go-retail-pos/internal/models"
)

// Default configuration values, inserted only when the key is absent.
// Existing values are never overwritten by a restart.
var defaultSettings = map[string]string{
	SettingExchangeRate: "45.50",
	SettingBusinessName: "Mi Punto de Venta",
	SettingAddress:      "",
	SettingPhone:        "",
	SettingTaxID:        "",
	SettingTaxRate:      "16",
	SettingProfitMargin: "30",
}

func (s *Store) seedDefaults() error {
	for key, value := range defaultSettings {
		var count int64
		if err := s.db.Model(&models.Setting{}).Where("key = ?", key).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := s.db.Create(&models.Setting{Key: key, Value: value}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// seedDemoData fills an empty catalog with a starter inventory and contact
// book so a fresh install is usable out of the box. It checks the product
// table only: a shop that deleted its demo contacts keeps them deleted.
func (s *Store) seedDemoData() error {
	var count int64
	if err := s.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Code: "001", Name: "Harina Pan 1kg", Category: "Alimentos", UnitCost: 2.00, CostPrice: 2.00, SalePrice: 2.50, Stock: 50},
		{Code: "002", Name: "Aceite de Maíz 1L", Category: "Alimentos", UnitCost: 3.50, CostPrice: 3.50, SalePrice: 4.25, Stock: 30},
		{Code: "003", Name: "Azúcar 1kg", Category: "Alimentos", UnitCost: 1.40, CostPrice: 1.40, SalePrice: 1.80, Stock: 45},
		{Code: "004", Name: "Arroz 1kg", Category: "Alimentos", UnitCost: 1.60, CostPrice: 1.60, SalePrice: 2.00, Stock: 60},
		{Code: "005", Name: "Leche en Polvo 400g", Category: "Lácteos", UnitCost: 4.50, CostPrice: 4.50, SalePrice: 5.50, Stock: 25},
		{Code: "006", Name: "Pasta 500g", Category: "Alimentos", UnitCost: 1.20, CostPrice: 1.20, SalePrice: 1.50, Stock: 80},
		{Code: "007", Name: "Café molido 250g", Category: "Bebidas", UnitCost: 3.00, CostPrice: 3.00, SalePrice: 3.75, Stock: 40},
		{Code: "008", Name: "Margarina 500g", Category: "Lácteos", UnitCost: 1.80, CostPrice: 1.80, SalePrice: 2.25, Stock: 35},
		{Code: "009", Name: "Detergente 1L", Category: "Limpieza", UnitCost: 2.40, CostPrice: 2.40, SalePrice: 3.00, Stock: 20},
		{Code: "010", Name: "Jabón en barra x3", Category: "Limpieza", UnitCost: 2.20, CostPrice: 2.20, SalePrice: 2.75, Stock: 15},
	}
	for i := range products {
		products[i].UnitOfMeasure = "Unit"
		products[i].UnitsPerBulk = 1
		products[i].StockMinimum = 5
		if err := s.db.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	contacts := []models.Contact{
		{Kind: models.ContactKindCustomer, Name: "Juan Pérez", TaxID: "V-12345678", Phone: "0412-1234567"},
		{Kind: models.ContactKindCustomer, Name: "María García", TaxID: "V-87654321", Phone: "0414-7654321"},
		{Kind: models.ContactKindCustomer, Name: "Carlos Rodríguez", TaxID: "V-11223344", Phone: "0416-1122334"},
		{Kind: models.ContactKindSupplier, Name: "Distribuidora Central", TaxID: "J-12345678-0", Phone: "0212-1234567"},
		{Kind: models.ContactKindSupplier, Name: "Mayorista del Este", TaxID: "J-87654321-0", Phone: "0212-7654321"},
		{Kind: models.ContactKindSupplier, Name: "Alimentos del Valle", TaxID: "J-11223344-0", Phone: "0212-1122334"},
	}
	for i := range contacts {
		if err := s.db.Create(&contacts[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
