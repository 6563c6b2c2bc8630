package socialControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/middleware"
	"github.com/harshitap649-prog/peterart07/models"
)

const maxCommentLength = 500

var (
	ErrCommentEmpty   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment cannot exceed 500 characters")
)

type AddCommentRequest struct {
	Comment string `json:"comment"`
}

// AddComment stores a comment with the author's display name copied from
// the user row at write time, so later renames never rewrite history.
// The text is trimmed first; empty or over-length text is rejected.
func AddComment(db *gorm.DB, userID, artworkID uint, text string) (*models.ArtworkComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrCommentEmpty
	}
	// Length is counted in characters, not bytes, so non-ASCII text gets
	// the same 500-character allowance.
	if utf8.RuneCountInString(text) > maxCommentLength {
		return nil, ErrCommentTooLong
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	comment := models.ArtworkComment{
		UserID:    userID,
		ArtworkID: artworkID,
		UserName:  user.Name,
		Comment:   text,
		CreatedAt: time.Now(),
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// POST /user/artworks/:artworkID/comments
func AddCommentHandler(db *gorm.DB) gin.HandlerFunc {
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

		var req AddCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		comment, err := AddComment(db, userID, uint(artworkID), req.Comment)
		if err != nil {
			if errors.Is(err, ErrCommentEmpty) || errors.Is(err, ErrCommentTooLong) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"comment": err.Error()}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
			return
		}
		c.JSON(http.StatusCreated, comment)
	}
}

// GET /artworks/:id/comments — newest first
func GetCommentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		artworkID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork ID"})
			return
		}
		var comments []models.ArtworkComment
		if err := db.Where("artwork_id = ?", artworkID).
			Order("created_at DESC").Find(&comments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}
