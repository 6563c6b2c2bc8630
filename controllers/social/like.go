package socialControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/middleware"
	"github.com/harshitap649-prog/peterart07/models"
)

// insertLike mirrors insertWishlist: a duplicate-key error from a racing
// toggle means the like already exists and is reported as success.
func insertLike(db *gorm.DB, userID, artworkID uint) (bool, error) {
	like := models.ArtworkLike{UserID: userID, ArtworkID: artworkID, CreatedAt: time.Now()}
	if err := db.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// ToggleLike flips the heart on the artwork detail page and returns the
// fresh aggregate count. The count is recomputed per call, never cached.
func ToggleLike(db *gorm.DB, userID, artworkID uint) (liked bool, likeCount int64, err error) {
	var like models.ArtworkLike
	err = db.Where("user_id = ? AND artwork_id = ?", userID, artworkID).First(&like).Error
	switch {
	case err == nil:
		if err = db.Delete(&like).Error; err != nil {
			return true, 0, err
		}
		liked = false
	case errors.Is(err, gorm.ErrRecordNotFound):
		liked, err = insertLike(db, userID, artworkID)
		if err != nil {
			return false, 0, err
		}
	default:
		return false, 0, err
	}

	if err = db.Model(&models.ArtworkLike{}).
		Where("artwork_id = ?", artworkID).Count(&likeCount).Error; err != nil {
		return liked, 0, err
	}
	return liked, likeCount, nil
}

// POST /user/artworks/:artworkID/like
func ToggleLikeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		artworkID, err := strconv.ParseUint(c.Param("artworkID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork ID"})
			return
		}
		var artwork models.Artwork
		if err := db.First(&artwork, artworkID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}

		liked, likeCount, err := ToggleLike(db, userID, uint(artworkID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"liked": liked, "like_count": likeCount})
	}
}
