// internals/features/classes/organization/controller/organization_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/constants"
	"belajarshafa_backend/internals/features/classes/organization/dto"
	orgModel "belajarshafa_backend/internals/features/classes/organization/model"
	userModel "belajarshafa_backend/internals/features/users/user/model"
	helper "belajarshafa_backend/internals/helpers"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

var validate = validator.New()

type OrganizationController struct {
	DB *gorm.DB
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db}
}

func (ctrl *OrganizationController) loadOrg(id uuid.UUID) (*orgModel.OrganizationModel, error) {
	var org orgModel.OrganizationModel
	if err := ctrl.DB.
		Preload("Managers").
		Preload("Members").
		First(&org, "organization_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

/* ===================== CREATE ===================== */
// POST /api/organizations
func (ctrl *OrganizationController) Create(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	org := orgModel.OrganizationModel{
		OrganizationName:        strings.TrimSpace(req.OrganizationName),
		OrganizationDescription: req.OrganizationDescription,
		Managers:                []userModel.UserModel{{ID: callerID}},
	}
	if err := ctrl.DB.Create(&org).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat organisasi")
	}

	return helper.JsonCreated(c, "Organisasi berhasil dibuat", dto.FromOrganizationModel(org))
}

/* ===================== LIST MINE ===================== */
// GET /api/organizations
func (ctrl *OrganizationController) List(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	q := ctrl.DB.Model(&orgModel.OrganizationModel{}).Preload("Managers").Preload("Members")
	if !authmw.HasAnyRole(roles, constants.RoleAdmin) {
		q = q.Where(ctrl.DB.
			Where("organization_id IN (SELECT organization_id FROM organization_managers WHERE user_id = ?)", callerID).
			Or("organization_id IN (SELECT organization_id FROM organization_members WHERE user_id = ?)", callerID))
	}

	var orgs []orgModel.OrganizationModel
	if err := q.Order("organization_created_at DESC").Find(&orgs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil organisasi")
	}
	return helper.JsonOK(c, "ok", dto.FromOrganizationModels(orgs))
}

/* ===================== ADD MEMBER ===================== */
// POST /api/organizations/:id/members
func (ctrl *OrganizationController) AddMember(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	org, err := ctrl.loadOrg(orgID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Organisasi tidak ditemukan")
	}
	if !org.IsManager(callerID) && !authmw.HasAnyRole(roles, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya manager organisasi yang boleh menambah anggota")
	}

	var req dto.OrganizationMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.UserID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id wajib diisi")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if org.IsMember(req.UserID) {
		return helper.JsonError(c, fiber.StatusBadRequest, "User sudah menjadi anggota organisasi")
	}

	if err := ctrl.DB.Model(org).Association("Members").Append(&user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah anggota")
	}
	return helper.JsonOK(c, "Anggota berhasil ditambahkan", nil)
}

/* ===================== REMOVE MEMBER ===================== */
// DELETE /api/organizations/:id/members/:userId
func (ctrl *OrganizationController) RemoveMember(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "userId tidak valid")
	}

	org, err := ctrl.loadOrg(orgID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Organisasi tidak ditemukan")
	}
	if !org.IsManager(callerID) && !authmw.HasAnyRole(roles, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya manager organisasi yang boleh mengeluarkan anggota")
	}
	if !org.IsMember(userID) {
		return helper.JsonError(c, fiber.StatusNotFound, "User bukan anggota organisasi ini")
	}

	if err := ctrl.DB.Model(org).Association("Members").Delete(&userModel.UserModel{ID: userID}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengeluarkan anggota")
	}
	return helper.JsonDeleted(c, "Anggota berhasil dikeluarkan", nil)
}
