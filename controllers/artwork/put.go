package artworkcontroller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harshitap649-prog/peterart07/models"
	"github.com/harshitap649-prog/peterart07/storage"
	"gorm.io/gorm"
)

// UpdateArtwork updates an existing artwork by ID. Accepts the same form
// fields as CreateArtwork and an optional "image" file; a new image
// replaces the old reference, which is deleted best-effort.
func UpdateArtwork(db *gorm.DB, images storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork ID"})
			return
		}

		var artwork models.Artwork
		if err := db.First(&artwork, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}

		if v := c.PostForm("title"); strings.TrimSpace(v) != "" {
			artwork.Title = strings.TrimSpace(v)
		}
		if v := c.PostForm("description"); v != "" {
			artwork.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil || p <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"price": "price must be a positive number"}})
				return
			}
			artwork.Price = p
		}

		if file, err := c.FormFile("image"); err == nil {
			oldRef := artwork.Image
			newRef, err := images.Put(c.Request.Context(), file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
				return
			}
			artwork.Image = newRef
			// Old image removal is best-effort; a stale file never blocks
			// the update.
			if oldRef != "" {
				if delErr := images.Delete(c.Request.Context(), oldRef); delErr != nil {
					log.Printf("⚠️ Failed to delete old image %s: %v", oldRef, delErr)
				}
			}
		}

		if err := db.Save(&artwork).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
			return
		}

		c.JSON(http.StatusOK, artwork)
	}
}
