// internals/features/courses/course/service/duplicate_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "belajarshafa_backend/internals/features/courses/course/model"
	materialModel "belajarshafa_backend/internals/features/courses/material/model"
	topicModel "belajarshafa_backend/internals/features/courses/topic/model"
)

// DuplicateCourse menyalin kursus beserta topik dan materinya dalam satu
// transaksi. Urutan dipertahankan; salinan dimiliki actor dan berjudul
// "<judul asli> (Copy)".
func DuplicateCourse(db *gorm.DB, source courseModel.CourseModel, actorID uuid.UUID) (*courseModel.CourseModel, error) {
	copyCourse := courseModel.CourseModel{
		CourseTitle:        source.CourseTitle + " (Copy)",
		CourseDescription:  source.CourseDescription,
		CourseLevel:        source.CourseLevel,
		CourseType:         source.CourseType,
		CourseCategoryID:   source.CourseCategoryID,
		CourseThumbnailURL: source.CourseThumbnailURL,
		CourseIsActive:     source.CourseIsActive,
		CourseCreatedBy:    actorID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&copyCourse).Error; err != nil {
			return err
		}

		var topics []topicModel.TopicModel
		if err := tx.
			Where("topic_course_id = ?", source.CourseID).
			Order("topic_sequence ASC").
			Find(&topics).Error; err != nil {
			return err
		}

		for _, t := range topics {
			copyTopic := topicModel.TopicModel{
				TopicCourseID:    copyCourse.CourseID,
				TopicTitle:       t.TopicTitle,
				TopicDescription: t.TopicDescription,
				TopicSequence:    t.TopicSequence,
			}
			if err := tx.Create(&copyTopic).Error; err != nil {
				return err
			}

			var materials []materialModel.MaterialModel
			if err := tx.
				Where("material_topic_id = ?", t.TopicID).
				Order("material_sequence ASC").
				Find(&materials).Error; err != nil {
				return err
			}
			for _, m := range materials {
				copyMaterial := materialModel.MaterialModel{
					MaterialTopicID:     copyTopic.TopicID,
					MaterialTitle:       m.MaterialTitle,
					MaterialDescription: m.MaterialDescription,
					MaterialType:        m.MaterialType,
					MaterialContentURL:  m.MaterialContentURL,
					MaterialContentText: m.MaterialContentText,
					MaterialSequence:    m.MaterialSequence,
				}
				if err := tx.Create(&copyMaterial).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &copyCourse, nil
}
