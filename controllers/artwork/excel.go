package artworkcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harshitap649-prog/peterart07/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ImportArtworksFromExcel bulk-creates artworks from an uploaded sheet.
// Expected columns: Title, Description, Price, ImageURL. Rows with a
// missing title, an unparseable price, or no image URL are skipped. Meant
// for seeding the catalog with already-hosted images.
func ImportArtworksFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, skippedCount := 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			title := get(0)
			description := get(1)
			priceStr := get(2)
			imageURL := get(3)

			price, err := strconv.ParseFloat(priceStr, 64)
			if title == "" || imageURL == "" || err != nil || price <= 0 {
				skippedCount++
				continue
			}

			artwork := models.Artwork{
				Title:       title,
				Description: description,
				Price:       price,
				Image:       imageURL,
			}
			if err := db.Create(&artwork).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Import finished",
			"created": createdCount,
			"skipped": skippedCount,
		})
	}
}
