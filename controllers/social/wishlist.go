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

// WishlistEntry is the wishlist listing row joined with the artwork.
type WishlistEntry struct {
	ArtworkID uint      `json:"artwork_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	AddedAt   time.Time `json:"added_at"`
}

// insertWishlist adds the pair, treating a unique-constraint violation
// from a concurrent toggle as "already in the wishlist" rather than an
// error. The unique index is the only backstop against the check-then-act
// race; there is no application-level lock.
func insertWishlist(db *gorm.DB, userID, artworkID uint) (bool, error) {
	entry := models.Wishlist{UserID: userID, ArtworkID: artworkID, CreatedAt: time.Now()}
	if err := db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// ToggleWishlist removes the pair when present, inserts it otherwise, and
// reports whether the artwork is in the wishlist afterwards.
func ToggleWishlist(db *gorm.DB, userID, artworkID uint) (bool, error) {
	var entry models.Wishlist
	err := db.Where("user_id = ? AND artwork_id = ?", userID, artworkID).First(&entry).Error
	if err == nil {
		if err := db.Delete(&entry).Error; err != nil {
			return true, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return insertWishlist(db, userID, artworkID)
}

// POST /user/wishlist/:artworkID/toggle
func ToggleWishlistHandler(db *gorm.DB) gin.HandlerFunc {
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

		inWishlist, err := ToggleWishlist(db, userID, uint(artworkID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"in_wishlist": inWishlist})
	}
}

// GET /user/wishlist
func GetWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}

		var entries []WishlistEntry
		err := db.Model(&models.Wishlist{}).
			Select("wishlists.artwork_id, artworks.title, artworks.price, artworks.image, wishlists.created_at AS added_at").
			Joins("JOIN artworks ON artworks.id = wishlists.artwork_id").
			Where("wishlists.user_id = ?", userID).
			Order("wishlists.created_at DESC").
			Scan(&entries).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
