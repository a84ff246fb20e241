// internals/features/courses/topic/controller/topic_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/constants"
	courseModel "belajarshafa_backend/internals/features/courses/course/model"
	"belajarshafa_backend/internals/features/courses/topic/dto"
	topicModel "belajarshafa_backend/internals/features/courses/topic/model"
	helper "belajarshafa_backend/internals/helpers"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

var validate = validator.New()

type TopicController struct {
	DB *gorm.DB
}

func NewTopicController(db *gorm.DB) *TopicController {
	return &TopicController{DB: db}
}

// loadCourseForManage mengambil kursus dan memastikan caller boleh mengubah isinya.
func (ctrl *TopicController) loadCourseForManage(c *fiber.Ctx, courseID uuid.UUID) (*courseModel.CourseModel, error) {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return nil, err
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if course.CourseCreatedBy != callerID && !authmw.HasAnyRole(authmw.GetRoles(c), constants.RoleAdmin) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Hanya pembuat kursus yang boleh mengubah topik")
	}
	return &course, nil
}

/* ===================== CREATE ===================== */
// POST /api/topics
func (ctrl *TopicController) Create(c *fiber.Ctx) error {
	var req dto.CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := ctrl.loadCourseForManage(c, req.TopicCourseID); err != nil {
		return err
	}

	// sequence kosong -> max+1; sequence terisi dan bentrok -> 400, tidak digeser otomatis
	sequence := 0
	if req.TopicSequence != nil {
		sequence = *req.TopicSequence
		var count int64
		if err := ctrl.DB.Model(&topicModel.TopicModel{}).
			Where("topic_course_id = ? AND topic_sequence = ?", req.TopicCourseID, sequence).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Sequence sudah dipakai topik lain")
		}
	} else {
		var max *int
		if err := ctrl.DB.Model(&topicModel.TopicModel{}).
			Where("topic_course_id = ?", req.TopicCourseID).
			Select("MAX(topic_sequence)").Scan(&max).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		sequence = 1
		if max != nil {
			sequence = *max + 1
		}
	}

	topic := topicModel.TopicModel{
		TopicCourseID:    req.TopicCourseID,
		TopicTitle:       strings.TrimSpace(req.TopicTitle),
		TopicDescription: req.TopicDescription,
		TopicSequence:    sequence,
	}
	if err := ctrl.DB.Create(&topic).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat topik")
	}
	return helper.JsonCreated(c, "Topik berhasil dibuat", dto.FromTopicModel(topic))
}

/* ===================== LIST BY COURSE ===================== */
// GET /api/topics/course/:courseId
func (ctrl *TopicController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "courseId tidak valid")
	}

	var topics []topicModel.TopicModel
	if err := ctrl.DB.
		Where("topic_course_id = ?", courseID).
		Order("topic_sequence ASC").
		Find(&topics).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil topik")
	}
	return helper.JsonOK(c, "ok", dto.FromTopicModels(topics))
}

/* ===================== UPDATE ===================== */
// PATCH /api/topics/:id
func (ctrl *TopicController) Update(c *fiber.Ctx) error {
	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var topic topicModel.TopicModel
	if err := ctrl.DB.First(&topic, "topic_id = ?", topicID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Topik tidak ditemukan")
	}
	if _, err := ctrl.loadCourseForManage(c, topic.TopicCourseID); err != nil {
		return err
	}

	var req dto.UpdateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{}
	if req.TopicTitle != nil {
		updates["topic_title"] = strings.TrimSpace(*req.TopicTitle)
	}
	if req.TopicDescription != nil {
		updates["topic_description"] = *req.TopicDescription
	}
	if req.TopicSequence != nil && *req.TopicSequence != topic.TopicSequence {
		var count int64
		if err := ctrl.DB.Model(&topicModel.TopicModel{}).
			Where("topic_course_id = ? AND topic_sequence = ? AND topic_id <> ?",
				topic.TopicCourseID, *req.TopicSequence, topicID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Sequence sudah dipakai topik lain")
		}
		updates["topic_sequence"] = *req.TopicSequence
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromTopicModel(topic))
	}

	if err := ctrl.DB.Model(&topic).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah topik")
	}
	if err := ctrl.DB.First(&topic, "topic_id = ?", topicID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat topik")
	}
	return helper.JsonUpdated(c, "Topik berhasil diubah", dto.FromTopicModel(topic))
}

/* ===================== DELETE ===================== */
// DELETE /api/topics/:id  (soft delete)
func (ctrl *TopicController) Delete(c *fiber.Ctx) error {
	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var topic topicModel.TopicModel
	if err := ctrl.DB.First(&topic, "topic_id = ?", topicID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Topik tidak ditemukan")
	}
	if _, err := ctrl.loadCourseForManage(c, topic.TopicCourseID); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&topic).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus topik")
	}
	return helper.JsonDeleted(c, "Topik berhasil dihapus", fiber.Map{"topic_id": topicID})
}

/* ===================== REORDER ===================== */
// PUT /api/topics/reorder/:courseId
// Semua perubahan urutan dijalankan dalam satu transaksi (all-or-nothing).
func (ctrl *TopicController) Reorder(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "courseId tidak valid")
	}
	if _, err := ctrl.loadCourseForManage(c, courseID); err != nil {
		return err
	}

	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	seenID := make(map[uuid.UUID]bool, len(req.Items))
	seenSeq := make(map[int]bool, len(req.Items))
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		if seenID[item.ID] {
			return helper.JsonError(c, fiber.StatusBadRequest, "id duplikat dalam payload: "+item.ID.String())
		}
		if seenSeq[item.Sequence] {
			return helper.JsonError(c, fiber.StatusBadRequest, "sequence duplikat dalam payload")
		}
		seenID[item.ID] = true
		seenSeq[item.Sequence] = true
		ids = append(ids, item.ID)
	}

	// semua id harus milik kursus ini
	var count int64
	if err := ctrl.DB.Model(&topicModel.TopicModel{}).
		Where("topic_id IN ? AND topic_course_id = ?", ids, courseID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if int(count) != len(ids) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ada topic id yang bukan milik kursus ini")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// dua fase supaya tidak menabrak unique (course, sequence) saat swap
		for _, item := range req.Items {
			if err := tx.Model(&topicModel.TopicModel{}).
				Where("topic_id = ?", item.ID).
				Update("topic_sequence", -item.Sequence).Error; err != nil {
				return err
			}
		}
		for _, item := range req.Items {
			if err := tx.Model(&topicModel.TopicModel{}).
				Where("topic_id = ?", item.ID).
				Update("topic_sequence", item.Sequence).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah urutan topik")
	}

	var topics []topicModel.TopicModel
	if err := ctrl.DB.
		Where("topic_course_id = ?", courseID).
		Order("topic_sequence ASC").
		Find(&topics).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat topik")
	}
	return helper.JsonUpdated(c, "Urutan topik berhasil diubah", dto.FromTopicModels(topics))
}
