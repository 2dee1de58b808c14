package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProductsExcel streams the catalog as an .xlsx workbook.
func (h *Handler) ExportProductsExcel(c *gin.Context) {
	f, err := h.exporter.ProductsWorkbook()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
	c.Header("Content-Type", xlsxContentType)
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// ExportProductsCSV streams the catalog as CSV.
func (h *Handler) ExportProductsCSV(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="products.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := h.exporter.ProductsCSV(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// ExportSalesExcel streams recent sales as an .xlsx workbook (?limit=).
func (h *Handler) ExportSalesExcel(c *gin.Context) {
	f, err := h.exporter.SalesWorkbook(intQuery(c, "limit", 50))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="sales.xlsx"`)
	c.Header("Content-Type", xlsxContentType)
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// ImportProducts accepts a multipart "file" upload, .xlsx or .csv by
// extension, and writes the rows into the catalog.
func (h *Handler) ImportProducts(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	var imported int
	if hasSuffixFold(fileHeader.Filename, ".csv") {
		imported, err = h.exporter.ImportProductsCSV(file)
	} else {
		imported, err = h.exporter.ImportProductsExcel(file)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Import failed", "imported": imported})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}
