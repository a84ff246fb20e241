// internals/features/courses/material/controller/material_controller.go
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
	"belajarshafa_backend/internals/features/courses/material/dto"
	materialModel "belajarshafa_backend/internals/features/courses/material/model"
	"belajarshafa_backend/internals/features/courses/material/service"
	topicModel "belajarshafa_backend/internals/features/courses/topic/model"
	helper "belajarshafa_backend/internals/helpers"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

var validate = validator.New()

type MaterialController struct {
	DB *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

// loadTopicForManage memastikan topik ada dan caller adalah pemilik kursusnya.
func (ctrl *MaterialController) loadTopicForManage(c *fiber.Ctx, topicID uuid.UUID) (*topicModel.TopicModel, error) {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return nil, err
	}

	var topic topicModel.TopicModel
	if err := ctrl.DB.First(&topic, "topic_id = ?", topicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Topik tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", topic.TopicCourseID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
	}
	if course.CourseCreatedBy != callerID && !authmw.HasAnyRole(authmw.GetRoles(c), constants.RoleAdmin) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Hanya pembuat kursus yang boleh mengubah materi")
	}
	return &topic, nil
}

/* ===================== CREATE ===================== */
// POST /api/materials
func (ctrl *MaterialController) Create(c *fiber.Ctx) error {
	var req dto.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := ctrl.loadTopicForManage(c, req.MaterialTopicID); err != nil {
		return err
	}
	if err := service.ValidateContent(req.MaterialType, req.MaterialContentURL, req.MaterialContentText); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sequence := 0
	if req.MaterialSequence != nil {
		sequence = *req.MaterialSequence
		var count int64
		if err := ctrl.DB.Model(&materialModel.MaterialModel{}).
			Where("material_topic_id = ? AND material_sequence = ?", req.MaterialTopicID, sequence).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Sequence sudah dipakai materi lain")
		}
	} else {
		var max *int
		if err := ctrl.DB.Model(&materialModel.MaterialModel{}).
			Where("material_topic_id = ?", req.MaterialTopicID).
			Select("MAX(material_sequence)").Scan(&max).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		sequence = 1
		if max != nil {
			sequence = *max + 1
		}
	}

	material := materialModel.MaterialModel{
		MaterialTopicID:     req.MaterialTopicID,
		MaterialTitle:       strings.TrimSpace(req.MaterialTitle),
		MaterialDescription: req.MaterialDescription,
		MaterialType:        req.MaterialType,
		MaterialContentURL:  req.MaterialContentURL,
		MaterialContentText: req.MaterialContentText,
		MaterialSequence:    sequence,
	}
	if err := ctrl.DB.Create(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat materi")
	}
	return helper.JsonCreated(c, "Materi berhasil dibuat", dto.FromMaterialModel(material))
}

/* ===================== LIST BY TOPIC ===================== */
// GET /api/materials/topic/:topicId
func (ctrl *MaterialController) ListByTopic(c *fiber.Ctx) error {
	topicID, err := uuid.Parse(c.Params("topicId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "topicId tidak valid")
	}

	var materials []materialModel.MaterialModel
	if err := ctrl.DB.
		Where("material_topic_id = ?", topicID).
		Order("material_sequence ASC").
		Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}
	return helper.JsonOK(c, "ok", dto.FromMaterialModels(materials))
}

/* ===================== UPDATE ===================== */
// PATCH /api/materials/:id
func (ctrl *MaterialController) Update(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var material materialModel.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", materialID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
	}
	if _, err := ctrl.loadTopicForManage(c, material.MaterialTopicID); err != nil {
		return err
	}

	var req dto.UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// konten hasil akhir divalidasi sesuai tipe akhirnya
	finalType := material.MaterialType
	if req.MaterialType != nil {
		finalType = *req.MaterialType
	}
	finalURL := material.MaterialContentURL
	if req.MaterialContentURL != nil {
		finalURL = req.MaterialContentURL
	}
	finalText := material.MaterialContentText
	if req.MaterialContentText != nil {
		finalText = req.MaterialContentText
	}
	if err := service.ValidateContent(finalType, finalURL, finalText); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{}
	if req.MaterialTitle != nil {
		updates["material_title"] = strings.TrimSpace(*req.MaterialTitle)
	}
	if req.MaterialDescription != nil {
		updates["material_description"] = *req.MaterialDescription
	}
	if req.MaterialType != nil {
		updates["material_type"] = *req.MaterialType
	}
	if req.MaterialContentURL != nil {
		updates["material_content_url"] = *req.MaterialContentURL
	}
	if req.MaterialContentText != nil {
		updates["material_content_text"] = *req.MaterialContentText
	}
	if req.MaterialSequence != nil && *req.MaterialSequence != material.MaterialSequence {
		var count int64
		if err := ctrl.DB.Model(&materialModel.MaterialModel{}).
			Where("material_topic_id = ? AND material_sequence = ? AND material_id <> ?",
				material.MaterialTopicID, *req.MaterialSequence, materialID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Sequence sudah dipakai materi lain")
		}
		updates["material_sequence"] = *req.MaterialSequence
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromMaterialModel(material))
	}

	if err := ctrl.DB.Model(&material).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah materi")
	}
	if err := ctrl.DB.First(&material, "material_id = ?", materialID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat materi")
	}
	return helper.JsonUpdated(c, "Materi berhasil diubah", dto.FromMaterialModel(material))
}

/* ===================== DELETE ===================== */
// DELETE /api/materials/:id  (soft delete)
func (ctrl *MaterialController) Delete(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var material materialModel.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", materialID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
	}
	if _, err := ctrl.loadTopicForManage(c, material.MaterialTopicID); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus materi")
	}
	return helper.JsonDeleted(c, "Materi berhasil dihapus", fiber.Map{"material_id": materialID})
}

/* ===================== REORDER ===================== */
// PUT /api/materials/reorder/:topicId
// Satu transaksi untuk seluruh perubahan urutan.
func (ctrl *MaterialController) Reorder(c *fiber.Ctx) error {
	topicID, err := uuid.Parse(c.Params("topicId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "topicId tidak valid")
	}
	if _, err := ctrl.loadTopicForManage(c, topicID); err != nil {
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

	var count int64
	if err := ctrl.DB.Model(&materialModel.MaterialModel{}).
		Where("material_id IN ? AND material_topic_id = ?", ids, topicID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if int(count) != len(ids) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ada material id yang bukan milik topik ini")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			if err := tx.Model(&materialModel.MaterialModel{}).
				Where("material_id = ?", item.ID).
				Update("material_sequence", -item.Sequence).Error; err != nil {
				return err
			}
		}
		for _, item := range req.Items {
			if err := tx.Model(&materialModel.MaterialModel{}).
				Where("material_id = ?", item.ID).
				Update("material_sequence", item.Sequence).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah urutan materi")
	}

	var materials []materialModel.MaterialModel
	if err := ctrl.DB.
		Where("material_topic_id = ?", topicID).
		Order("material_sequence ASC").
		Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat materi")
	}
	return helper.JsonUpdated(c, "Urutan materi berhasil diubah", dto.FromMaterialModels(materials))
}
