package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/storage"
)

// SetupRoutes is the single entry‐point that wires up Auth, Public, User,
// Admin and Order route groups. adminEmail is resolved once at startup;
// it is the only authorization input the admin group uses.
func SetupRoutes(r *gin.Engine, db *gorm.DB, images storage.ImageStore, adminEmail string) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Public gallery + checkout routes
	SetupPublicRoutes(r, db)

	// 3️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, db)

	// 4️⃣ Admin routes (JWT + admin email check)
	SetupAdminRoutes(r, db, images, adminEmail)
}
