package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultsSeeded(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, "45.50", s.GetSetting(SettingExchangeRate, ""))
	assert.Equal(t, "Mi Punto de Venta", s.GetSetting(SettingBusinessName, ""))
	assert.Equal(t, "16", s.GetSetting(SettingTaxRate, ""))
	assert.Equal(t, "30", s.GetSetting(SettingProfitMargin, ""))
	assert.Equal(t, "", s.GetSetting(SettingAddress, "missing"))
	assert.Equal(t, "fallback", s.GetSetting("neverStored", "fallback"))
}

func TestSetSettingUpserts(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetSetting(SettingBusinessName, "Abasto El Sol"))
	require.NoError(t, s.SetSetting(SettingBusinessName, "Abasto La Luna"))
	assert.Equal(t, "Abasto La Luna", s.GetSetting(SettingBusinessName, ""))

	// No duplicate rows for the key.
	settings, err := s.ListSettings()
	require.NoError(t, err)
	seen := 0
	for _, row := range settings {
		if row.Key == SettingBusinessName {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestNumericSettingsParseWithFallback(t *testing.T) {
	s := newTestStore(t)

	assert.InDelta(t, 45.50, s.ExchangeRate(), 1e-9)
	assert.InDelta(t, 16.0, s.TaxRate(), 1e-9)
	assert.InDelta(t, 0.30, s.ProfitMargin(), 1e-9)

	require.NoError(t, s.SetExchangeRate(36.125))
	assert.InDelta(t, 36.13, s.ExchangeRate(), 1e-9) // stored with two decimals

	// Garbage in the table falls back to the defaults instead of failing.
	require.NoError(t, s.SetSetting(SettingExchangeRate, "not-a-number"))
	require.NoError(t, s.SetSetting(SettingTaxRate, ""))
	require.NoError(t, s.SetSetting(SettingProfitMargin, "x"))
	assert.InDelta(t, DefaultExchangeRate, s.ExchangeRate(), 1e-9)
	assert.InDelta(t, DefaultTaxRate, s.TaxRate(), 1e-9)
	assert.InDelta(t, DefaultProfitMargin, s.ProfitMargin(), 1e-9)

	require.NoError(t, s.SetSetting(SettingProfitMargin, "50"))
	assert.InDelta(t, 0.50, s.ProfitMargin(), 1e-9)
}
