// internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/helpers/oss"
	authmw "belajarshafa_backend/internals/middlewares/auth"
	"belajarshafa_backend/internals/route/details"
)

// SetupRoutes mendaftarkan seluruh route aplikasi.
// /api/auth sebagian besar publik (dengan rate limiter), sisanya di belakang
// AuthMiddleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===== PUBLIC =====
	details.AuthPublicRoutes(api, db)

	// ===== PROTECTED =====
	protected := api.Group("", authmw.AuthMiddleware(db))
	details.AuthProtectedRoutes(protected, db)
	details.UserRoutes(protected, db)
	details.ClassRoutes(protected, db)
	details.CourseRoutes(protected, db)
	details.LearningRoutes(protected, db)

	// upload butuh object storage; kalau ENV belum lengkap, route tetap
	// terdaftar tapi menolak dengan 503
	ossSvc, err := oss.NewOSSServiceFromEnv()
	if err != nil {
		log.Printf("[INFO] OSS tidak aktif: %v", err)
	}
	details.UploadRoutes(protected, ossSvc)
}
