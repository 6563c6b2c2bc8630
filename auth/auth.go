package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/models"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password so a caller cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

const minPasswordLength = 6

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser validates the signup fields, enforces email uniqueness
// (exact match on the stored value, no normalization) and stores a bcrypt
// hash. Field-scoped failures come back in the map; only storage faults
// come back as an error.
func RegisterUser(db *gorm.DB, email, password, name string) (*models.User, map[string]string, error) {
	fieldErrs := map[string]string{}
	if email == "" {
		fieldErrs["email"] = "email is required"
	}
	if password == "" {
		fieldErrs["password"] = "password is required"
	} else if len(password) < minPasswordLength {
		fieldErrs["password"] = "password must be at least 6 characters"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Provider:     "local",
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fieldErrs["email"] = "email is already registered"
			return nil, fieldErrs, nil
		}
		return nil, nil, err
	}
	return &user, nil, nil
}

// Authenticate compares the submitted password against the stored bcrypt
// hash. Unknown email and bad password are indistinguishable.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// SeedAdmin ensures the single configured administrator account exists.
// Called once at startup; the admin is distinguished everywhere else by
// email match, not by a role column.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Admin",
		Provider:     "local",
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded admin user %s", email)
	return nil
}

// -------- Handlers --------

func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, fieldErrs, err := RegisterUser(db, req.Email, req.Password, req.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
			return
		}
		token, err := issueJWT(*user)
		if err != nil {
			log.Printf("❌ Failed to sign session token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration successful",
			"user":    user,
			"token":   token,
		})
	}
}

func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, err := Authenticate(db, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidCredentials.Error()})
				return
			}
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

// issueJWT generates a signed session token for a user
func issueJWT(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
