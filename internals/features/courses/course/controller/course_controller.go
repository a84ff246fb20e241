// internals/features/courses/course/controller/course_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/constants"
	categoryModel "belajarshafa_backend/internals/features/courses/category/model"
	"belajarshafa_backend/internals/features/courses/course/dto"
	courseModel "belajarshafa_backend/internals/features/courses/course/model"
	"belajarshafa_backend/internals/features/courses/course/service"
	helper "belajarshafa_backend/internals/helpers"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// canManageCourse: pembuat kursus atau ADMIN.
func canManageCourse(c *fiber.Ctx, course *courseModel.CourseModel, callerID uuid.UUID) bool {
	if course.CourseCreatedBy == callerID {
		return true
	}
	return authmw.HasAnyRole(authmw.GetRoles(c), constants.RoleAdmin)
}

func (ctrl *CourseController) ensureCategoryExists(id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	var count int64
	if err := ctrl.DB.Model(&categoryModel.CategoryModel{}).
		Where("category_id = ?", *id).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Kategori tidak ditemukan")
	}
	return nil
}

/* ===================== CREATE ===================== */
// POST /api/courses
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.ensureCategoryExists(req.CourseCategoryID); err != nil {
		return err
	}

	course := courseModel.CourseModel{
		CourseTitle:        strings.TrimSpace(req.CourseTitle),
		CourseDescription:  req.CourseDescription,
		CourseLevel:        req.CourseLevel,
		CourseType:         req.CourseType,
		CourseCategoryID:   req.CourseCategoryID,
		CourseThumbnailURL: req.CourseThumbnailURL,
		CourseIsActive:     true,
		CourseCreatedBy:    callerID,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kursus")
	}
	return helper.JsonCreated(c, "Kursus berhasil dibuat", dto.FromCourseModel(course))
}

/* ===================== LIST ===================== */
// GET /api/courses
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	q := ctrl.DB.Model(&courseModel.CourseModel{})

	// kursus PRIVATE hanya terlihat oleh pemiliknya (admin lihat semua)
	if !authmw.HasAnyRole(roles, constants.RoleAdmin) {
		q = q.Where(ctrl.DB.
			Where("course_type = ?", courseModel.TypePublic).
			Or("course_created_by = ?", callerID))
	}

	if categoryID := strings.TrimSpace(c.Query("category_id")); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "category_id tidak valid")
		}
		q = q.Where("course_category_id = ?", id)
	}
	if level := strings.ToUpper(strings.TrimSpace(c.Query("level"))); level != "" {
		if !courseModel.ValidLevel(level) {
			return helper.JsonError(c, fiber.StatusBadRequest, "level tidak valid")
		}
		q = q.Where("course_level = ?", level)
	}
	if courseType := strings.ToUpper(strings.TrimSpace(c.Query("type"))); courseType != "" {
		if !courseModel.ValidType(courseType) {
			return helper.JsonError(c, fiber.StatusBadRequest, "type tidak valid")
		}
		q = q.Where("course_type = ?", courseType)
	}
	if c.Query("is_active") != "" {
		q = q.Where("course_is_active = ?", c.Query("is_active") == "true")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("course_title ILIKE ?", "%"+search+"%")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kursus")
	}

	var courses []courseModel.CourseModel
	if err := q.Order("course_created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}
	return helper.JsonList(c, "ok", dto.FromCourseModels(courses), helper.BuildMeta(total, p))
}

/* ===================== DETAIL ===================== */
// GET /api/courses/:id
func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}
	if course.CourseType == courseModel.TypePrivate &&
		course.CourseCreatedBy != callerID &&
		!authmw.HasAnyRole(roles, constants.RoleAdmin) {
		// detail PRIVATE disembunyikan seperti tidak ada
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}

	return helper.JsonOK(c, "ok", dto.FromCourseModel(course))
}

/* ===================== UPDATE ===================== */
// PATCH /api/courses/:id
func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}
	if !canManageCourse(c, &course, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pembuat kursus yang boleh mengubah kursus")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.CourseCategoryID != nil {
		if err := ctrl.ensureCategoryExists(req.CourseCategoryID); err != nil {
			return err
		}
	}

	updates := map[string]interface{}{}
	if req.CourseTitle != nil {
		updates["course_title"] = strings.TrimSpace(*req.CourseTitle)
	}
	if req.CourseDescription != nil {
		updates["course_description"] = *req.CourseDescription
	}
	if req.CourseLevel != nil {
		updates["course_level"] = *req.CourseLevel
	}
	if req.CourseType != nil {
		updates["course_type"] = *req.CourseType
	}
	if req.CourseCategoryID != nil {
		updates["course_category_id"] = *req.CourseCategoryID
	}
	if req.CourseThumbnailURL != nil {
		updates["course_thumbnail_url"] = *req.CourseThumbnailURL
	}
	if req.CourseIsActive != nil {
		updates["course_is_active"] = *req.CourseIsActive
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromCourseModel(course))
	}

	if err := ctrl.DB.Model(&course).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah kursus")
	}
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kursus")
	}
	return helper.JsonUpdated(c, "Kursus berhasil diubah", dto.FromCourseModel(course))
}

/* ===================== DELETE ===================== */
// DELETE /api/courses/:id  (soft delete)
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}
	if !canManageCourse(c, &course, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pembuat kursus yang boleh menghapus kursus")
	}

	if err := ctrl.DB.Delete(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kursus")
	}
	return helper.JsonDeleted(c, "Kursus berhasil dihapus", fiber.Map{"course_id": courseID})
}

/* ===================== DUPLICATE ===================== */
// POST /api/courses/:id/duplicate
func (ctrl *CourseController) Duplicate(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}
	if course.CourseType == courseModel.TypePrivate &&
		course.CourseCreatedBy != callerID &&
		!authmw.HasAnyRole(roles, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}

	copyCourse, err := service.DuplicateCourse(ctrl.DB, course, callerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menduplikasi kursus")
	}
	return helper.JsonCreated(c, "Kursus berhasil diduplikasi", dto.FromCourseModel(*copyCourse))
}

/* ===================== STATS ===================== */
// GET /api/courses/:id/stats
func (ctrl *CourseController) Stats(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}
	if course.CourseType == courseModel.TypePrivate &&
		course.CourseCreatedBy != callerID &&
		!authmw.HasAnyRole(roles, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}

	var stats dto.CourseStats
	if err := ctrl.DB.Raw(`
		SELECT
			(SELECT COUNT(*) FROM course_topics
				WHERE topic_course_id = @id AND topic_deleted_at IS NULL) AS topic_count,
			(SELECT COUNT(*) FROM course_materials m
				JOIN course_topics t ON t.topic_id = m.material_topic_id
				WHERE t.topic_course_id = @id
				  AND t.topic_deleted_at IS NULL AND m.material_deleted_at IS NULL) AS material_count,
			(SELECT COUNT(*) FROM course_enrollments
				WHERE enrollment_course_id = @id) AS enrollment_count,
			(SELECT COUNT(*) FROM course_enrollments
				WHERE enrollment_course_id = @id AND enrollment_completed_at IS NOT NULL) AS completion_count,
			(SELECT AVG(enrollment_progress_percent) FROM course_enrollments
				WHERE enrollment_course_id = @id) AS average_progress
	`, map[string]interface{}{"id": courseID}).Scan(&stats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	return helper.JsonOK(c, "ok", stats)
}
