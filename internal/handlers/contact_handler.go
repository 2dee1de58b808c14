package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-retail-pos/internal/models"
)

// ListContacts returns contacts, optionally filtered with ?kind=Customer
// or ?kind=Supplier. Operation counters are recomputed from the ledgers
// first, so the listing never shows drifted numbers.
func (h *Handler) ListContacts(c *gin.Context) {
	if err := h.store.RecalculateContactOperations(); err != nil {
		zap.L().Warn("operation count recalculation failed", zap.Error(err))
	}

	contacts, err := h.store.ListContacts(c.Query("kind"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

type ContactRequest struct {
	ID      uint   `json:"id"`
	Kind    string `json:"kind" binding:"required,oneof=Customer Supplier"`
	Name    string `json:"name" binding:"required"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// SaveContact inserts (id absent or 0) or updates a contact.
func (h *Handler) SaveContact(c *gin.Context) {
	var input ContactRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and a valid kind are required"})
		return
	}

	contact := models.Contact{
		ID:      input.ID,
		Kind:    input.Kind,
		Name:    input.Name,
		TaxID:   input.TaxID,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := h.store.SaveContact(&contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact"})
		return
	}

	status := http.StatusOK
	if input.ID == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, contact)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteContact(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}
