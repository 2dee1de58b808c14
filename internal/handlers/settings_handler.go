package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings returns every configuration row.
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.store.ListSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings upserts the posted key/value pairs.
func (h *Handler) UpdateSettings(c *gin.Context) {
	var input map[string]string
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	for key, value := range input {
		if err := h.store.SetSetting(key, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting", "key": key})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved"})
}

// GetExchangeRate reports the current USD -> local rate.
func (h *Handler) GetExchangeRate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"exchange_rate": h.store.ExchangeRate()})
}

type ExchangeRateRequest struct {
	Rate float64 `json:"rate" binding:"required,gt=0"`
}

// SetExchangeRate updates the rate used by future purchases. Totals on
// already-recorded purchases are frozen and unaffected.
func (h *Handler) SetExchangeRate(c *gin.Context) {
	var input ExchangeRateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A positive rate is required"})
		return
	}
	if err := h.store.SetExchangeRate(input.Rate); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save exchange rate"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exchange_rate": h.store.ExchangeRate()})
}
