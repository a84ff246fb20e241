// internals/features/classes/class/controller/class_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/constants"
	"belajarshafa_backend/internals/features/classes/class/dto"
	classModel "belajarshafa_backend/internals/features/classes/class/model"
	"belajarshafa_backend/internals/features/classes/class/service"
	userModel "belajarshafa_backend/internals/features/users/user/model"
	helper "belajarshafa_backend/internals/helpers"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

var validate = validator.New()

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

func parseDate(s *string) (*datatypes.Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}

// loadClass mengambil kelas beserta relasi untuk cek membership.
func (ctrl *ClassController) loadClass(id uuid.UUID) (*classModel.ClassModel, error) {
	var class classModel.ClassModel
	if err := ctrl.DB.
		Preload("Mentors").
		Preload("Mentees").
		First(&class, "class_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

// canManageClass: manager/admin, atau mentor yang ditugaskan di kelas ini.
func canManageClass(c *fiber.Ctx, class *classModel.ClassModel, callerID uuid.UUID) bool {
	roles := authmw.GetRoles(c)
	if authmw.HasAnyRole(roles, constants.RoleManager, constants.RoleAdmin) {
		return true
	}
	return class.HasMentor(callerID)
}

/* ===================== CREATE ===================== */
// POST /api/classes
func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	startDate, err := parseDate(req.ClassStartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format class_start_date harus YYYY-MM-DD")
	}
	endDate, err := parseDate(req.ClassEndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format class_end_date harus YYYY-MM-DD")
	}

	// mentor yang membuat kelas otomatis masuk daftar mentor
	mentorIDs := append([]uuid.UUID{}, req.MentorIDs...)
	if authmw.HasAnyRole(roles, constants.RoleMentor) {
		found := false
		for _, id := range mentorIDs {
			if id == callerID {
				found = true
				break
			}
		}
		if !found {
			mentorIDs = append(mentorIDs, callerID)
		}
	}

	// semua mentor id harus ada dan memegang role MENTOR
	var mentors []userModel.UserModel
	if len(mentorIDs) > 0 {
		if err := ctrl.DB.
			Where("id IN ? AND ? = ANY(roles)", mentorIDs, constants.RoleMentor).
			Find(&mentors).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memvalidasi mentor")
		}
		if len(mentors) != len(mentorIDs) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Ada mentor_id yang tidak valid atau bukan MENTOR")
		}
	}

	// organisasi di-infer dari org pembuat kalau tidak dikirim
	orgID := req.ClassOrganizationID
	if orgID == nil {
		var inferred []uuid.UUID
		if err := ctrl.DB.Raw(`
			SELECT organization_id FROM organization_managers WHERE user_id = ?
			UNION
			SELECT organization_id FROM organization_members WHERE user_id = ?
			LIMIT 1`, callerID, callerID,
		).Scan(&inferred).Error; err == nil && len(inferred) > 0 {
			orgID = &inferred[0]
		}
	}

	code, err := service.NewUniqueCode(ctrl.DB)
	if err != nil {
		if errors.Is(err, service.ErrCodeExhausted) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghasilkan kode kelas")
	}

	class := classModel.ClassModel{
		ClassName:           strings.TrimSpace(req.ClassName),
		ClassCode:           code,
		ClassDescription:    req.ClassDescription,
		ClassOrganizationID: orgID,
		ClassStartDate:      startDate,
		ClassEndDate:        endDate,
		ClassCreatedBy:      callerID,
		Mentors:             mentors,
	}
	if err := ctrl.DB.Create(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromClassModel(class))
}

/* ===================== LIST ===================== */
// GET /api/classes
func (ctrl *ClassController) List(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	q := ctrl.DB.Model(&classModel.ClassModel{}).Preload("Mentors").Preload("Mentees")

	switch {
	case authmw.HasAnyRole(roles, constants.RoleAdmin):
		// semua kelas
	case authmw.HasAnyRole(roles, constants.RoleManager):
		q = q.Where(ctrl.DB.
			Where("class_created_by = ?", callerID).
			Or("class_organization_id IN (SELECT organization_id FROM organization_managers WHERE user_id = ?)", callerID))
	default:
		q = q.Where(ctrl.DB.
			Where("class_id IN (SELECT class_id FROM class_mentors WHERE user_id = ?)", callerID).
			Or("class_id IN (SELECT class_id FROM class_mentees WHERE user_id = ?)", callerID))
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("class_name ILIKE ?", "%"+search+"%")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kelas")
	}

	var classes []classModel.ClassModel
	if err := q.Order("class_created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	return helper.JsonList(c, "ok", dto.FromClassModels(classes), helper.BuildMeta(total, p))
}

/* ===================== DETAIL ===================== */
// GET /api/classes/:id
func (ctrl *ClassController) GetByID(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	class, err := ctrl.loadClass(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	isMember := class.HasMentor(callerID) || class.HasMentee(callerID)
	if !isMember && !authmw.HasAnyRole(roles, constants.RoleManager, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan anggota kelas ini")
	}

	return helper.JsonOK(c, "ok", dto.FromClassModel(*class))
}

/* ===================== UPDATE ===================== */
// PATCH /api/classes/:id
func (ctrl *ClassController) Update(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	class, err := ctrl.loadClass(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if !canManageClass(c, class, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentor kelas atau manager yang boleh mengubah kelas")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{}
	if req.ClassName != nil {
		updates["class_name"] = strings.TrimSpace(*req.ClassName)
	}
	if req.ClassDescription != nil {
		updates["class_description"] = *req.ClassDescription
	}
	if req.ClassStartDate != nil {
		d, err := parseDate(req.ClassStartDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format class_start_date harus YYYY-MM-DD")
		}
		updates["class_start_date"] = d
	}
	if req.ClassEndDate != nil {
		d, err := parseDate(req.ClassEndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format class_end_date harus YYYY-MM-DD")
		}
		updates["class_end_date"] = d
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromClassModel(*class))
	}

	if err := ctrl.DB.Model(class).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah kelas")
	}

	updated, err := ctrl.loadClass(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kelas")
	}
	return helper.JsonUpdated(c, "Kelas berhasil diubah", dto.FromClassModel(*updated))
}

/* ===================== DELETE ===================== */
// DELETE /api/classes/:id  (soft delete)
func (ctrl *ClassController) Delete(c *fiber.Ctx) error {
	roles := authmw.GetRoles(c)
	if !authmw.HasAnyRole(roles, constants.RoleManager, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorManager("hapus kelas"))
	}

	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctrl.DB.Where("class_id = ?", classID).Delete(&classModel.ClassModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": classID})
}

/* ===================== JOIN BY CODE ===================== */
// POST /api/classes/join
func (ctrl *ClassController) JoinByCode(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	// dicek ulang di sini walau route sudah dijaga OnlyRoles
	if !authmw.HasAnyRole(authmw.GetRoles(c), constants.RoleMentee) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorMentee("bergabung ke kelas"))
	}

	var req dto.JoinClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// kode dicocokkan case-insensitive; tersimpan uppercase
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	var class classModel.ClassModel
	if err := ctrl.DB.Preload("Mentees").First(&class, "class_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kode kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if class.HasMentee(callerID) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Anda sudah menjadi anggota kelas ini")
	}

	if err := ctrl.DB.Model(&class).Association("Mentees").Append(&userModel.UserModel{ID: callerID}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal bergabung ke kelas")
	}

	return helper.JsonOK(c, "Berhasil bergabung ke kelas", dto.FromClassModel(class))
}

/* ===================== LEAVE ===================== */
// POST /api/classes/:id/leave
func (ctrl *ClassController) Leave(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	class, err := ctrl.loadClass(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if !class.HasMentee(callerID) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Anda bukan anggota kelas ini")
	}

	if err := ctrl.DB.Model(class).Association("Mentees").Delete(&userModel.UserModel{ID: callerID}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal keluar dari kelas")
	}
	return helper.JsonOK(c, "Berhasil keluar dari kelas", nil)
}

/* ===================== MENTOR MANAGEMENT ===================== */
// POST /api/classes/:id/mentors
func (ctrl *ClassController) AddMentor(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	class, err := ctrl.loadClass(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if !canManageClass(c, class, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentor kelas atau manager yang boleh mengubah keanggotaan")
	}

	var req struct {
		MentorID uuid.UUID `json:"mentor_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.MentorID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "mentor_id wajib diisi")
	}

	var mentor userModel.UserModel
	if err := ctrl.DB.Where("id = ? AND ? = ANY(roles)", req.MentorID, constants.RoleMentor).
		First(&mentor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "mentor_id tidak valid atau bukan MENTOR")
	}
	if class.HasMentor(req.MentorID) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Mentor sudah ditugaskan di kelas ini")
	}

	if err := ctrl.DB.Model(class).Association("Mentors").Append(&mentor); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah mentor")
	}
	return helper.JsonOK(c, "Mentor berhasil ditambahkan", nil)
}

// DELETE /api/classes/:id/mentors/:mentorId
func (ctrl *ClassController) RemoveMentor(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	mentorID, err := uuid.Parse(c.Params("mentorId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "mentorId tidak valid")
	}

	class, err := ctrl.loadClass(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if !canManageClass(c, class, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentor kelas atau manager yang boleh mengubah keanggotaan")
	}
	if !class.HasMentor(mentorID) {
		return helper.JsonError(c, fiber.StatusNotFound, "Mentor tidak ditemukan di kelas ini")
	}

	if err := ctrl.DB.Model(class).Association("Mentors").Delete(&userModel.UserModel{ID: mentorID}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus mentor")
	}
	return helper.JsonDeleted(c, "Mentor berhasil dihapus dari kelas", nil)
}

// DELETE /api/classes/:id/mentees/:menteeId
func (ctrl *ClassController) RemoveMentee(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	menteeID, err := uuid.Parse(c.Params("menteeId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "menteeId tidak valid")
	}

	class, err := ctrl.loadClass(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	// mentor harus ditugaskan di kelas ini (scan membership, bukan filter query)
	if !canManageClass(c, class, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentor kelas atau manager yang boleh mengeluarkan mentee")
	}
	if !class.HasMentee(menteeID) {
		return helper.JsonError(c, fiber.StatusNotFound, "Mentee tidak ditemukan di kelas ini")
	}

	if err := ctrl.DB.Model(class).Association("Mentees").Delete(&userModel.UserModel{ID: menteeID}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengeluarkan mentee")
	}
	return helper.JsonDeleted(c, "Mentee berhasil dikeluarkan dari kelas", nil)
}
