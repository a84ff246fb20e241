// internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/constants"
	userController "belajarshafa_backend/internals/features/users/user/controller"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")
	// visibilitas list diatur per-role di controller (admin semua, manager scoped)
	users.Get("/", ctrl.List)
	users.Get("/:id", ctrl.GetByID)
	users.Patch("/:id/roles",
		authmw.OnlyRoles(constants.RoleErrorManager("mengubah role user"), constants.ManagerAndAbove...),
		ctrl.UpdateRoles)
	users.Patch("/:id/active",
		authmw.OnlyRoles(constants.RoleErrorManager("mengubah status user"), constants.ManagerAndAbove...),
		ctrl.SetActive)
}
