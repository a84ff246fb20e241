// internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "belajarshafa_backend/internals/features/users/auth/controller"
	"belajarshafa_backend/internals/middlewares"
)

// AuthPublicRoutes: endpoint auth yang bisa diakses tanpa token.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/refresh-token", ctrl.RefreshToken)
}

// AuthProtectedRoutes: endpoint auth yang butuh access token.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", ctrl.Me)
	auth.Post("/change-password", ctrl.ChangePassword)
}
