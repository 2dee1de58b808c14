package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-retail-pos/internal/models"
)

// PurchaseRequest carries a restock: the supplier's invoice number, an
// optional supplier contact, and the received lines. Each line may be
// priced per unit or per bulk container; the store converts to base units.
type PurchaseRequest struct {
	InvoiceNumber string `json:"invoice_number" binding:"required"`
	SupplierID    *uint  `json:"supplier_id"`
	Items         []struct {
		ProductID   *uint   `json:"product_id"`
		ProductName string  `json:"product_name"`
		Mode        string  `json:"mode" binding:"omitempty,oneof=Unit Bulk"`
		Quantity    int     `json:"quantity" binding:"required,min=1"`
		UnitPrice   float64 `json:"unit_price" binding:"min=0"`
	} `json:"items" binding:"required,min=1,dive"`
}

// CreatePurchase records a restock and reprices the affected products.
func (h *Handler) CreatePurchase(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invoice number and at least one item are required"})
		return
	}

	supplierName := ""
	if req.SupplierID != nil {
		if contact, err := h.store.GetContact(*req.SupplierID); err == nil {
			supplierName = contact.Name
		}
	}

	lines := make([]models.PurchaseLine, 0, len(req.Items))
	for _, item := range req.Items {
		name := item.ProductName
		if name == "" && item.ProductID != nil {
			if product, err := h.store.GetProduct(*item.ProductID); err == nil {
				name = product.Name
			}
		}
		lines = append(lines, models.PurchaseLine{
			ProductID:    item.ProductID,
			ProductName:  name,
			PurchaseMode: item.Mode,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	purchase := models.Purchase{
		InvoiceNumber: req.InvoiceNumber,
		SupplierID:    req.SupplierID,
		SupplierName:  supplierName,
	}
	if err := h.store.RecordPurchase(&purchase, lines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record purchase"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"purchase_id":   purchase.ID,
		"total_foreign": purchase.TotalForeign,
		"total_local":   purchase.TotalLocal,
	})
}

// ListPurchases returns recent purchases, newest first (?limit=).
func (h *Handler) ListPurchases(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	purchases, err := h.store.ListPurchases(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchases"})
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// GetPurchaseLines returns the line items of one purchase.
func (h *Handler) GetPurchaseLines(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	lines, err := h.store.PurchaseLines(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchase lines"})
		return
	}
	c.JSON(http.StatusOK, lines)
}
