package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardData is the one-call summary the main screen renders.
type DashboardData struct {
	TodayTotal        float64      `json:"today_total"`
	TodayTransactions int64        `json:"today_transactions"`
	TotalProducts     int64        `json:"total_products"`
	LowStockCount     int64        `json:"low_stock_count"`
	RecentSales       []RecentSale `json:"recent_sales"`
}

type RecentSale struct {
	ID            uint    `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	CustomerName  string  `json:"customer_name"`
	Date          string  `json:"date"`
	Total         float64 `json:"total"`
}

// Dashboard aggregates today's sales, catalog stats, and the latest sales.
func (h *Handler) Dashboard(c *gin.Context) {
	var data DashboardData

	total, transactions, err := h.store.TodaysSalesSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize today's sales"})
		return
	}
	data.TodayTotal = total
	data.TodayTransactions = transactions

	data.TotalProducts, data.LowStockCount, err = h.store.ProductStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute product stats"})
		return
	}

	recent, err := h.store.RecentSales(intQuery(c, "recent", 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent sales"})
		return
	}
	data.RecentSales = make([]RecentSale, 0, len(recent))
	for _, s := range recent {
		data.RecentSales = append(data.RecentSales, RecentSale{
			ID:            s.ID,
			InvoiceNumber: s.InvoiceNumber,
			CustomerName:  s.CustomerName,
			Date:          s.Date.Format("2006-01-02 15:04:05"),
			Total:         s.Total,
		})
	}

	c.JSON(http.StatusOK, data)
}
