// internals/features/users/user/controller/user_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/constants"
	"belajarshafa_backend/internals/features/users/user/dto"
	userModel "belajarshafa_backend/internals/features/users/user/model"
	"belajarshafa_backend/internals/features/users/user/service"
	helper "belajarshafa_backend/internals/helpers"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var userSortWhitelist = map[string]string{
	"created_at": "users.created_at",
	"user_name":  "users.user_name",
	"email":      "users.email",
}

/* ===================== LIST ===================== */
// GET /api/users?role=&search=&is_active=&page=&per_page=
func (ctrl *UserController) List(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	q := ctrl.DB.Model(&userModel.UserModel{})

	// MANAGER hanya melihat user yang berbagi org/kelas; ADMIN bebas.
	switch {
	case authmw.HasAnyRole(roles, constants.RoleAdmin):
		// unrestricted
	case authmw.HasAnyRole(roles, constants.RoleManager):
		scope, err := service.LoadManagerScope(ctrl.DB, callerID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat scope manager")
		}
		q = service.ApplyManagerScope(ctrl.DB, q, callerID, scope)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorManager("direktori user"))
	}

	if role := strings.ToUpper(strings.TrimSpace(c.Query("role"))); role != "" {
		if !constants.ValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
		}
		q = q.Where("? = ANY(users.roles)", role)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("users.user_name ILIKE ? OR users.email ILIKE ?", like, like)
	}
	if isActive := strings.TrimSpace(c.Query("is_active")); isActive != "" {
		q = q.Where("users.is_active = ?", isActive == "true")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(userSortWhitelist, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []userModel.UserModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonList(c, "ok", dto.FromUserModels(users), helper.BuildMeta(total, p))
}

/* ===================== DETAIL ===================== */
// GET /api/users/:id
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if !authmw.HasAnyRole(roles, constants.RoleAdmin) {
		if !authmw.HasAnyRole(roles, constants.RoleManager) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorManager("direktori user"))
		}
		scope, err := service.LoadManagerScope(ctrl.DB, callerID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat scope manager")
		}
		visible, err := service.CanSeeUser(ctrl.DB, callerID, targetID, scope)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if !visible {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", targetID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.FromUserModel(user))
}

/* ===================== UPDATE ROLES ===================== */
// PATCH /api/users/:id/roles
func (ctrl *UserController) UpdateRoles(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	// seorang manager/admin tidak boleh mengubah role dirinya sendiri
	if targetID == callerID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak dapat mengubah role sendiri")
	}

	var req dto.UpdateUserRolesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", targetID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if err := ctrl.DB.Model(&user).Update("roles", pq.StringArray(req.Roles)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah roles")
	}

	user.Roles = pq.StringArray(req.Roles)
	return helper.JsonUpdated(c, "Roles berhasil diubah", dto.FromUserModel(user))
}

/* ===================== SET ACTIVE ===================== */
// PATCH /api/users/:id/active
func (ctrl *UserController) SetActive(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if targetID == callerID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak dapat menonaktifkan akun sendiri")
	}

	var req dto.UpdateUserActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", targetID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if err := ctrl.DB.Model(&user).Update("is_active", *req.IsActive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status user")
	}

	user.IsActive = *req.IsActive
	return helper.JsonUpdated(c, "Status user berhasil diubah", dto.FromUserModel(user))
}
