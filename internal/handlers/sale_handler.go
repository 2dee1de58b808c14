package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-retail-pos/internal/models"
)

// CheckoutRequest is what the register sends: who bought, how they paid,
// and the cart. Prices are NOT trusted from the client - the current sale
// price is snapshotted server-side per line.
type CheckoutRequest struct {
	CustomerID    *uint   `json:"customer_id"`
	PaymentMethod string  `json:"payment_method"`
	Discount      float64 `json:"discount"`
	Items         []struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1,dive"`
}

// Checkout records a sale: snapshot prices, compute subtotal plus the
// configured tax minus discount, commit header and lines atomically, then
// issue the per-line stock decrements.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one item with quantity >= 1 is required"})
		return
	}

	var subtotal float64
	lines := make([]models.SaleLine, 0, len(req.Items))
	for _, item := range req.Items {
		product, err := h.store.GetProduct(item.ProductID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found", "product_id": item.ProductID})
			return
		}
		subtotal += product.SalePrice * float64(item.Quantity)
		lines = append(lines, models.SaleLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.SalePrice,
		})
	}

	tax := subtotal * (h.store.TaxRate() / 100)
	total := subtotal + tax - req.Discount

	customerName := models.DefaultCustomerName
	if req.CustomerID != nil {
		if contact, err := h.store.GetContact(*req.CustomerID); err == nil {
			customerName = contact.Name
		}
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Cash USD"
	}

	sale := models.Sale{
		CustomerID:    req.CustomerID,
		CustomerName:  customerName,
		Subtotal:      subtotal,
		Discount:      req.Discount,
		Total:         total,
		PaymentMethod: paymentMethod,
	}
	if err := h.store.RecordSale(&sale, lines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}

	// Stock decrements happen after the sale commits; a failure here leaves
	// stock stale, never the ledger.
	for _, line := range lines {
		if err := h.store.AdjustStock(line.ProductID, -line.Quantity); err != nil {
			zap.L().Warn("sale committed but stock not adjusted",
				zap.String("invoice", sale.InvoiceNumber),
				zap.Uint("product_id", line.ProductID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice_number": sale.InvoiceNumber,
		"sale_id":        sale.ID,
		"subtotal":       subtotal,
		"tax":            tax,
		"total":          total,
	})
}

// ListSales returns recent sales, newest first (?limit=, default 50).
func (h *Handler) ListSales(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	sales, err := h.store.ListSales(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// SaleItemCount returns how many units one sale moved.
func (h *Handler) SaleItemCount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	count, err := h.store.SaleItemCount(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count sale items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sale_id": id, "item_count": count})
}
