package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/models"
)

// ---------------------------------------------
// GOOGLE USER LOGIN
// ---------------------------------------------
func GoogleLoginHandler(db *gorm.DB) gin.HandlerFunc {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")

	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"idToken"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		payload, err := idtoken.Validate(c.Request.Context(), req.IDToken, clientID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
			return
		}

		email, _ := payload.Claims["email"].(string)
		name, _ := payload.Claims["name"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Google token has no email"})
			return
		}

		user, err := LoginOrCreateFromExternalIdentity(db, email, name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		token, err := issueJWT(*user)
		if err != nil {
			log.Printf("❌ Failed to sign session token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"token":   token,
		})
	}
}

// LoginOrCreateFromExternalIdentity logs in the user with this email if one
// exists, else creates one with a synthesized unusable password. The bcrypt
// hash of a random string can never match a submitted password, so these
// accounts only authenticate through the external hand-off.
func LoginOrCreateFromExternalIdentity(db *gorm.DB, email, displayName string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()+uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user = models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         displayName,
		Provider:     "google",
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent hand-off created the row first; load it.
			if err := db.Where("email = ?", email).First(&user).Error; err != nil {
				return nil, err
			}
			return &user, nil
		}
		return nil, err
	}
	return &user, nil
}
