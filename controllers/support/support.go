package supportController

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/middleware"
	"github.com/harshitap649-prog/peterart07/models"
)

type CreateSupportMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// POST /support — open to visitors; a signed-in user's id is attached and
// their name/email snapshot fills any blanks.
func CreateSupportMessageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSupportMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		fieldErrs := map[string]string{}
		if strings.TrimSpace(req.Subject) == "" {
			fieldErrs["subject"] = "subject is required"
		}
		if strings.TrimSpace(req.Message) == "" {
			fieldErrs["message"] = "message is required"
		}
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
			return
		}

		msg := models.SupportMessage{
			UserName:  strings.TrimSpace(req.Name),
			UserEmail: strings.TrimSpace(req.Email),
			Subject:   strings.TrimSpace(req.Subject),
			Message:   strings.TrimSpace(req.Message),
			Status:    models.SupportStatusPending,
			CreatedAt: time.Now(),
		}

		if userID, ok := middleware.CurrentUserID(c); ok {
			msg.UserID = &userID
			var user models.User
			if err := db.First(&user, userID).Error; err == nil {
				if msg.UserName == "" {
					msg.UserName = user.Name
				}
				if msg.UserEmail == "" {
					msg.UserEmail = user.Email
				}
			}
		}

		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit support message"})
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

// GET /admin/support
func GetAllSupportMessagesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.SupportMessage
		if err := db.Order("created_at DESC").Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch support messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}
