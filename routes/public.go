package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	artworkcontroller "github.com/harshitap649-prog/peterart07/controllers/artwork"
	orderControllers "github.com/harshitap649-prog/peterart07/controllers/order"
	socialControllers "github.com/harshitap649-prog/peterart07/controllers/social"
	supportController "github.com/harshitap649-prog/peterart07/controllers/support"
	"github.com/harshitap649-prog/peterart07/middleware"
)

// SetupPublicRoutes registers the gallery browsing, checkout and support
// endpoints. OptionalToken lets the detail page personalize wishlist and
// like state for signed-in visitors without requiring login.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	artworks := r.Group("/artworks")
	{
		artworks.GET("", artworkcontroller.GetArtworks(db))
		artworks.GET("/:id", middleware.OptionalToken, artworkcontroller.GetArtworkByID(db))
		artworks.GET("/:id/comments", socialControllers.GetCommentsHandler(db))
	}

	// Cash-on-delivery checkout; buyers do not need an account
	r.POST("/orders/place", orderControllers.PlaceOrderHandler(db))

	r.POST("/support", middleware.OptionalToken, supportController.CreateSupportMessageHandler(db))
}
