// internals/features/learning/progress/controller/progress_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	materialModel "belajarshafa_backend/internals/features/courses/material/model"
	topicModel "belajarshafa_backend/internals/features/courses/topic/model"
	enrollmentModel "belajarshafa_backend/internals/features/learning/enrollment/model"
	"belajarshafa_backend/internals/features/learning/progress/dto"
	progressModel "belajarshafa_backend/internals/features/learning/progress/model"
	"belajarshafa_backend/internals/features/learning/progress/service"
	helper "belajarshafa_backend/internals/helpers"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

var validate = validator.New()

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

/* ===================== UPDATE MATERIAL PROGRESS ===================== */
// PUT /api/progress/material/:materialId
func (ctrl *ProgressController) UpdateMaterialProgress(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	materialID, err := uuid.Parse(c.Params("materialId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "materialId tidak valid")
	}

	var req dto.UpdateMaterialProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// materi -> topik -> kursus
	var material materialModel.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", materialID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
	}
	var topic topicModel.TopicModel
	if err := ctrl.DB.First(&topic, "topic_id = ?", material.MaterialTopicID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Topik tidak ditemukan")
	}

	enrollment, err := service.EnsureEnrolled(ctrl.DB, callerID, topic.TopicCourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memastikan enrollment")
	}

	now := time.Now()

	var progress progressModel.MaterialProgressModel
	err = ctrl.DB.First(&progress,
		"progress_enrollment_id = ? AND progress_material_id = ?", enrollment.EnrollmentID, materialID).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"progress_is_completed":     req.IsCompleted,
			"progress_last_accessed_at": now,
		}
		if req.WatchedDuration != nil {
			updates["progress_watched_duration"] = *req.WatchedDuration
		}
		if err := ctrl.DB.Model(&progress).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan progress")
		}
		progress.ProgressIsCompleted = req.IsCompleted
		progress.ProgressLastAccessedAt = &now
		if req.WatchedDuration != nil {
			progress.ProgressWatchedDuration = *req.WatchedDuration
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		progress = progressModel.MaterialProgressModel{
			ProgressEnrollmentID:   enrollment.EnrollmentID,
			ProgressMaterialID:     materialID,
			ProgressIsCompleted:    req.IsCompleted,
			ProgressLastAccessedAt: &now,
		}
		if req.WatchedDuration != nil {
			progress.ProgressWatchedDuration = *req.WatchedDuration
		}
		if err := ctrl.DB.Create(&progress).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan progress")
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if err := ctrl.DB.Model(enrollment).
		Update("enrollment_last_accessed_at", now).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui enrollment")
	}

	if err := service.RecalculateCourseProgress(ctrl.DB, enrollment); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung progress kursus")
	}

	return helper.JsonUpdated(c, "Progress berhasil disimpan",
		dto.FromMaterialProgressModel(progress, enrollment.EnrollmentProgressPercent))
}

/* ===================== TOPIC PROGRESS ===================== */
// GET /api/progress/topic/:topicId
// Rekap dihitung dari materi topik ini saja, bukan dari persen kursus.
func (ctrl *ProgressController) TopicProgress(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	topicID, err := uuid.Parse(c.Params("topicId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "topicId tidak valid")
	}

	var topic topicModel.TopicModel
	if err := ctrl.DB.First(&topic, "topic_id = ?", topicID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Topik tidak ditemukan")
	}

	var enrollment enrollmentModel.EnrollmentModel
	if err := ctrl.DB.First(&enrollment,
		"enrollment_user_id = ? AND enrollment_course_id = ?", callerID, topic.TopicCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anda tidak terdaftar di kursus ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var materials []materialModel.MaterialModel
	if err := ctrl.DB.
		Where("material_topic_id = ?", topicID).
		Order("material_sequence ASC").
		Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	var rows []progressModel.MaterialProgressModel
	if err := ctrl.DB.
		Where("progress_enrollment_id = ? AND progress_is_completed = true", enrollment.EnrollmentID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil progress")
	}
	completedSet := make(map[uuid.UUID]bool, len(rows))
	for _, r := range rows {
		completedSet[r.ProgressMaterialID] = true
	}

	resp := dto.TopicProgressResponse{
		TopicID:   topicID,
		Materials: make([]dto.TopicProgressItem, 0, len(materials)),
		Total:     len(materials),
	}
	for _, m := range materials {
		done := completedSet[m.MaterialID]
		if done {
			resp.Completed++
		}
		resp.Materials = append(resp.Materials, dto.TopicProgressItem{
			MaterialID:    m.MaterialID,
			MaterialTitle: m.MaterialTitle,
			Sequence:      m.MaterialSequence,
			IsCompleted:   done,
		})
	}
	resp.Percent = service.ProgressPercent(resp.Completed, resp.Total)

	return helper.JsonOK(c, "ok", resp)
}
