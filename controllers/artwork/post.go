package artworkcontroller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/models"
	"github.com/harshitap649-prog/peterart07/storage"
)

// validateArtworkInput checks the required create fields. Title and price
// are mandatory; price must parse as a positive number before any write.
func validateArtworkInput(title, priceStr string) (float64, map[string]string) {
	fieldErrs := map[string]string{}
	if strings.TrimSpace(title) == "" {
		fieldErrs["title"] = "title is required"
	}
	var price float64
	if priceStr == "" {
		fieldErrs["price"] = "price is required"
	} else {
		p, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || p <= 0 {
			fieldErrs["price"] = "price must be a positive number"
		} else {
			price = p
		}
	}
	return price, fieldErrs
}

// CreateArtwork creates a new artwork with a mandatory image upload.
func CreateArtwork(db *gorm.DB, images storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		description := c.PostForm("description")
		priceStr := c.PostForm("price")

		price, fieldErrs := validateArtworkInput(title, priceStr)

		file, err := c.FormFile("image")
		if err != nil {
			fieldErrs["image"] = "image is required"
		}
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
			return
		}

		imageRef, err := images.Put(c.Request.Context(), file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}

		artwork := models.Artwork{
			Title:       strings.TrimSpace(title),
			Description: description,
			Price:       price,
			Image:       imageRef,
		}
		if err := db.Create(&artwork).Error; err != nil {
			// Don't leave an orphaned image behind a failed insert.
			if delErr := images.Delete(c.Request.Context(), imageRef); delErr != nil {
				log.Printf("⚠️ Failed to clean up image %s: %v", imageRef, delErr)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
			return
		}

		c.JSON(http.StatusCreated, artwork)
	}
}
