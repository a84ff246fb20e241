// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ctrl.DB, c)
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ctrl.DB, c)
}

func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	return service.GoogleLogin(ctrl.DB, c)
}

func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ctrl.DB, c)
}

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ctrl.DB, c)
}

func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	return service.Me(ctrl.DB, c)
}

func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ctrl.DB, c)
}
