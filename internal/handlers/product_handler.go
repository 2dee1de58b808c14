package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-retail-pos/internal/models"
)

// GetProducts lists the whole catalog, ordered by name.
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.store.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

type ProductRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	UnitOfMeasure string  `json:"unit_of_measure"`
	UnitsPerBulk  int     `json:"units_per_bulk"`
	BulkCost      float64 `json:"bulk_cost"`
	UnitCost      float64 `json:"unit_cost"`
	SalePrice     float64 `json:"sale_price"`
	Stock         int     `json:"stock"`
	StockMinimum  int     `json:"stock_minimum"`
	Description   string  `json:"description"`
}

func (r ProductRequest) toModel() models.Product {
	p := models.Product{
		Code:          r.Code,
		Name:          r.Name,
		Category:      r.Category,
		UnitOfMeasure: r.UnitOfMeasure,
		UnitsPerBulk:  r.UnitsPerBulk,
		BulkCost:      r.BulkCost,
		UnitCost:      r.UnitCost,
		CostPrice:     r.UnitCost, // the displayed cost price follows the unit cost
		SalePrice:     r.SalePrice,
		Stock:         r.Stock,
		StockMinimum:  r.StockMinimum,
		Description:   r.Description,
	}
	if p.UnitOfMeasure == "" {
		p.UnitOfMeasure = "Unit"
	}
	if p.UnitsPerBulk < 1 {
		p.UnitsPerBulk = 1
	}
	if p.StockMinimum == 0 {
		p.StockMinimum = 5
	}
	return p
}

// AddProduct creates a catalog entry.
func (h *Handler) AddProduct(c *gin.Context) {
	var input ProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
		return
	}

	product := input.toModel()
	if err := h.store.InsertProduct(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct overwrites an existing catalog entry.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := h.store.GetProduct(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input ProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
		return
	}

	product := input.toModel()
	product.ID = id
	if err := h.store.UpdateProduct(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteProduct(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// AdjustStock applies a manual stock correction. Negative deltas are fine
// and stock is allowed to go below zero.
func (h *Handler) AdjustStock(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input AdjustStockRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A non-zero delta is required"})
		return
	}

	if err := h.store.AdjustStock(id, input.Delta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
		return
	}

	product, err := h.store.GetProduct(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}
