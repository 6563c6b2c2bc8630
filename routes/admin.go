package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	artworkcontroller "github.com/harshitap649-prog/peterart07/controllers/artwork"
	orderControllers "github.com/harshitap649-prog/peterart07/controllers/order"
	supportController "github.com/harshitap649-prog/peterart07/controllers/support"
	userControllers "github.com/harshitap649-prog/peterart07/controllers/user"
	"github.com/harshitap649-prog/peterart07/middleware"
	"github.com/harshitap649-prog/peterart07/storage"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Every route
// re-checks the admin predicate: a valid session whose email equals the
// configured admin email.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, images storage.ImageStore, adminEmail string) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(adminEmail))
	{
		// ─────────── Artwork Management ───────────
		artworkAdmin := adminGroup.Group("/artworks")
		{
			artworkAdmin.POST("", artworkcontroller.CreateArtwork(db, images))
			artworkAdmin.PUT("/:id", artworkcontroller.UpdateArtwork(db, images))
			artworkAdmin.DELETE("/:id", artworkcontroller.DeleteArtwork(db, images))
			artworkAdmin.POST("/import-excel", artworkcontroller.ImportArtworksFromExcel(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			// websocket feed of newly placed orders; buyer contact details
			// ride on it, so it sits behind the admin predicate
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── User & Support Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/support", supportController.GetAllSupportMessagesHandler(db))
	}
}
