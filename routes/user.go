package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	socialControllers "github.com/harshitap649-prog/peterart07/controllers/social"
	userControllers "github.com/harshitap649-prog/peterart07/controllers/user"
	"github.com/harshitap649-prog/peterart07/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Wishlist ────────────────
		userGroup.GET("/wishlist", socialControllers.GetWishlistHandler(db))
		userGroup.POST("/wishlist/:artworkID/toggle", socialControllers.ToggleWishlistHandler(db))

		// ──────────────── Likes & Comments ────────────────
		userGroup.POST("/artworks/:artworkID/like", socialControllers.ToggleLikeHandler(db))
		userGroup.POST("/artworks/:artworkID/comments", socialControllers.AddCommentHandler(db))
	}
}
