package store

import (
	"fmt"
	"strconv"

	"gorm.io/gorm/clause"

	"go-retail-pos/internal/models"
)

// Recognized configuration keys.
const (
	SettingExchangeRate = "exchangeRate"
	SettingBusinessName = "businessName"
	SettingAddress      = "address"
	SettingPhone        = "phone"
	SettingTaxID        = "taxId"
	SettingTaxRate      = "taxRatePercent"
	SettingProfitMargin = "profitMarginPercent"
)

// Fallbacks used when a key is absent or does not parse.
const (
	DefaultExchangeRate = 45.50
	DefaultTaxRate      = 16.0
	DefaultProfitMargin = 0.30
)

// GetSetting returns the stored value for key, or fallback when absent.
func (s *Store) GetSetting(key, fallback string) string {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return fallback
	}
	return setting.Value
}

// SetSetting upserts a configuration value by key.
func (s *Store) SetSetting(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}

// ListSettings returns every configuration row.
func (s *Store) ListSettings() ([]models.Setting, error) {
	var settings []models.Setting
	err := s.db.Order("key").Find(&settings).Error
	return settings, err
}

// ExchangeRate returns the configured USD -> local rate, falling back to
// the default on absence or parse failure.
func (s *Store) ExchangeRate() float64 {
	raw := s.GetSetting(SettingExchangeRate, "")
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DefaultExchangeRate
	}
	return rate
}

// SetExchangeRate persists the rate with two decimals.
func (s *Store) SetExchangeRate(rate float64) error {
	return s.SetSetting(SettingExchangeRate, fmt.Sprintf("%.2f", rate))
}

// ProfitMargin returns the configured markup as a fraction (30% -> 0.30).
func (s *Store) ProfitMargin() float64 {
	raw := s.GetSetting(SettingProfitMargin, "")
	percent, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DefaultProfitMargin
	}
	return percent / 100
}

// TaxRate returns the configured tax percentage (16 means 16%).
func (s *Store) TaxRate() float64 {
	raw := s.GetSetting(SettingTaxRate, "")
	percent, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DefaultTaxRate
	}
	return percent
}
