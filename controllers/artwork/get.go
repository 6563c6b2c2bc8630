package artworkcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harshitap649-prog/peterart07/middleware"
	"github.com/harshitap649-prog/peterart07/models"
	"gorm.io/gorm"
)

// GetArtworkByID returns the public detail view: the artwork, its like
// count and comments (newest first), plus the wishlist/like state for the
// requesting user when a session is present.
// URL param: /artworks/:id
func GetArtworkByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork ID"})
			return
		}

		var artwork models.Artwork
		if err := db.First(&artwork, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve artwork"})
			}
			return
		}

		var likeCount int64
		db.Model(&models.ArtworkLike{}).Where("artwork_id = ?", artwork.ID).Count(&likeCount)

		var comments []models.ArtworkComment
		db.Where("artwork_id = ?", artwork.ID).Order("created_at DESC").Find(&comments)

		resp := gin.H{
			"artwork":    artwork,
			"like_count": likeCount,
			"comments":   comments,
		}

		if userID, ok := middleware.CurrentUserID(c); ok {
			var inWishlist, liked int64
			db.Model(&models.Wishlist{}).
				Where("user_id = ? AND artwork_id = ?", userID, artwork.ID).Count(&inWishlist)
			db.Model(&models.ArtworkLike{}).
				Where("user_id = ? AND artwork_id = ?", userID, artwork.ID).Count(&liked)
			resp["in_wishlist"] = inWishlist > 0
			resp["liked"] = liked > 0
		}

		c.JSON(http.StatusOK, resp)
	}
}
