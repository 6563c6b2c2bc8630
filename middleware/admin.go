package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin allows only the single configured administrator identity.
// There is no role table: being the admin means your session email equals
// the ADMIN_EMAIL resolved once at startup. Must run after ValidateToken.
func RequireAdmin(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, _ := c.Get("email")
		emailStr, ok := email.(string)
		if adminEmail == "" || !ok || emailStr != adminEmail {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
