package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harshitap649-prog/peterart07/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "OrderRef", "ArtworkID", "ArtworkTitle", "UnitPrice",
			"Quantity", "TotalAmount", "BuyerName", "BuyerEmail", "Phone",
			"Address", "PaymentMethod", "Status", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.ArtworkID)
			row.AddCell().SetValue(o.ArtworkTitle)
			row.AddCell().SetValue(o.UnitPrice)
			row.AddCell().SetValue(o.Quantity)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.BuyerName)
			row.AddCell().SetValue(o.BuyerEmail)
			row.AddCell().SetValue(o.Phone)
			row.AddCell().SetValue(o.Address)
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
