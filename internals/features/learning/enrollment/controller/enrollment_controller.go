// internals/features/learning/enrollment/controller/enrollment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/constants"
	courseDto "belajarshafa_backend/internals/features/courses/course/dto"
	courseModel "belajarshafa_backend/internals/features/courses/course/model"
	"belajarshafa_backend/internals/features/learning/enrollment/dto"
	enrollmentModel "belajarshafa_backend/internals/features/learning/enrollment/model"
	progressModel "belajarshafa_backend/internals/features/learning/progress/model"
	progressService "belajarshafa_backend/internals/features/learning/progress/service"
	helper "belajarshafa_backend/internals/helpers"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

var validate = validator.New()

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

/* ===================== ENROLL ===================== */
// POST /api/enrollments
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", req.CourseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}
	if !course.CourseIsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kursus sedang tidak aktif")
	}

	var count int64
	if err := ctrl.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_user_id = ? AND enrollment_course_id = ?", callerID, req.CourseID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Anda sudah terdaftar di kursus ini")
	}

	enrollment := enrollmentModel.EnrollmentModel{
		EnrollmentUserID:   callerID,
		EnrollmentCourseID: req.CourseID,
	}
	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftar kursus")
	}
	return helper.JsonCreated(c, "Berhasil mendaftar kursus", dto.FromEnrollmentModel(enrollment))
}

/* ===================== UNENROLL ===================== */
// DELETE /api/enrollments/course/:courseId
// Progress materi ikut terhapus.
func (ctrl *EnrollmentController) Unenroll(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "courseId tidak valid")
	}

	var enrollment enrollmentModel.EnrollmentModel
	if err := ctrl.DB.First(&enrollment,
		"enrollment_user_id = ? AND enrollment_course_id = ?", callerID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anda tidak terdaftar di kursus ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("progress_enrollment_id = ?", enrollment.EnrollmentID).
			Delete(&progressModel.MaterialProgressModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&enrollment).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal keluar dari kursus")
	}
	return helper.JsonDeleted(c, "Berhasil keluar dari kursus", fiber.Map{"course_id": courseID})
}

/* ===================== MY COURSES ===================== */
// GET /api/enrollments/my-courses
func (ctrl *EnrollmentController) MyCourses(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_user_id = ?", callerID)

	p := helper.ParseFiber(c, "enrolled_at", "desc", helper.DefaultOpts)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung enrollment")
	}

	var enrollments []enrollmentModel.EnrollmentModel
	if err := q.Order("enrollment_enrolled_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil enrollment")
	}

	// lampirkan ringkasan kursus per enrollment
	responses := dto.FromEnrollmentModels(enrollments)
	for i := range responses {
		var course courseModel.CourseModel
		if err := ctrl.DB.First(&course, "course_id = ?", responses[i].EnrollmentCourseID).Error; err == nil {
			cr := courseDto.FromCourseModel(course)
			responses[i].Course = &cr
		}
	}
	return helper.JsonList(c, "ok", responses, helper.BuildMeta(total, p))
}

/* ===================== COURSE ROSTER ===================== */
// GET /api/enrollments/course/:courseId  (pembuat kursus atau ADMIN)
func (ctrl *EnrollmentController) CourseRoster(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "courseId tidak valid")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}
	if course.CourseCreatedBy != callerID && !authmw.HasAnyRole(roles, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pembuat kursus yang boleh melihat peserta")
	}

	q := ctrl.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_course_id = ?", courseID)

	p := helper.ParseFiber(c, "enrolled_at", "desc", helper.DefaultOpts)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung peserta")
	}

	var enrollments []enrollmentModel.EnrollmentModel
	if err := q.Order("enrollment_enrolled_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil peserta")
	}
	return helper.JsonList(c, "ok", dto.FromEnrollmentModels(enrollments), helper.BuildMeta(total, p))
}

/* ===================== MARK COMPLETED ===================== */
// POST /api/enrollments/course/:courseId/complete
func (ctrl *EnrollmentController) MarkCompleted(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "courseId tidak valid")
	}

	var enrollment enrollmentModel.EnrollmentModel
	if err := ctrl.DB.First(&enrollment,
		"enrollment_user_id = ? AND enrollment_course_id = ?", callerID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anda tidak terdaftar di kursus ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	// persen dihitung ulang dulu, bukan mengandalkan nilai tersimpan
	if err := progressService.RecalculateCourseProgress(ctrl.DB, &enrollment); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung progress")
	}
	if enrollment.EnrollmentProgressPercent < 100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Progress belum 100%, kursus belum bisa ditandai selesai")
	}

	return helper.JsonOK(c, "Kursus berhasil ditandai selesai", dto.FromEnrollmentModel(enrollment))
}
