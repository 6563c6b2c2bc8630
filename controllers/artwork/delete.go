package artworkcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harshitap649-prog/peterart07/models"
	"github.com/harshitap649-prog/peterart07/storage"
	"gorm.io/gorm"
)

// DeleteArtwork removes an artwork and its stored image. Existing orders
// keep rendering from their own snapshot columns, so deletion is allowed
// even when orders reference this artwork.
func DeleteArtwork(db *gorm.DB, images storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Artwork ID is required"})
			return
		}

		var artwork models.Artwork
		if err := db.First(&artwork, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}

		if err := images.Delete(c.Request.Context(), artwork.Image); err != nil {
			log.Printf("⚠️ Failed to delete image %s: %v", artwork.Image, err)
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("artwork_id = ?", artwork.ID).Delete(&models.Wishlist{}).Error; err != nil {
				return err
			}
			if err := tx.Where("artwork_id = ?", artwork.ID).Delete(&models.ArtworkLike{}).Error; err != nil {
				return err
			}
			return tx.Delete(&artwork).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted successfully"})
	}
}
