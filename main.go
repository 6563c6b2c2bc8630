package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/auth"
	"github.com/harshitap649-prog/peterart07/models"
	"github.com/harshitap649-prog/peterart07/routes"
	"github.com/harshitap649-prog/peterart07/storage"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Order{},
		&models.SupportMessage{},
		&models.Wishlist{},
		&models.ArtworkLike{},
		&models.ArtworkComment{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the single admin identity; isAdmin is an email match against
	// ADMIN_EMAIL everywhere, so this account must exist.
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if err := auth.SeedAdmin(db, adminEmail, os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatalf("❌ Admin seed failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// Image upload cap (enforced at the transport boundary)
	r.MaxMultipartMemory = 5 << 20 // 5MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Image store: local disk or Cloudinary, chosen once at boot
	images := initImageStore(r)

	// Setup routes
	routes.SetupRoutes(r, db, images, adminEmail)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	// TranslateError turns driver unique-violations into
	// gorm.ErrDuplicatedKey, which the wishlist/like toggles rely on.
	gormCfg := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), gormCfg)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// initImageStore picks the ImageStore variant from IMAGE_STORE. The local
// variant serves its directory via gin and gets a daily backup routine;
// the cloudinary variant needs CLOUDINARY_URL credentials.
func initImageStore(r *gin.Engine) storage.ImageStore {
	switch os.Getenv("IMAGE_STORE") {
	case "cloudinary":
		store, err := storage.NewCloudinaryStore(os.Getenv("CLOUDINARY_URL"), "artworks")
		if err != nil {
			log.Fatalf("❌ Cloudinary init failed: %v", err)
		}
		log.Println("✅ Using Cloudinary image store")
		return store
	default:
		uploadsDir := os.Getenv("UPLOAD_DIR")
		if uploadsDir == "" {
			uploadsDir = "./uploads/artworks"
		}
		backupDir := os.Getenv("BACKUP_DIR")
		if backupDir == "" {
			backupDir = "./backup/uploads"
		}

		// Serve uploaded images
		r.Static("/uploads/artworks", uploadsDir)

		// Start backup routine at 2 AM daily, keep 4 days of backups
		go startDailyBackupAtFixedTime(uploadsDir, backupDir, 4*24*time.Hour, 2, 0)

		log.Printf("✅ Using local image store at %s", uploadsDir)
		return storage.NewLocalStore(uploadsDir, "/uploads/artworks")
	}
}

// startDailyBackupAtFixedTime backs up images daily at a fixed hour and removes old backups
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next image backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			log.Printf("❌ Failed to back up images: %v", err)
		} else {
			log.Printf("✅ Images backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
