package dto

import (
	"time"

	"github.com/google/uuid"

	progressModel "belajarshafa_backend/internals/features/learning/progress/model"
)

type UpdateMaterialProgressRequest struct {
	WatchedDuration *int `json:"watched_duration,omitempty" validate:"omitempty,min=0"`
	IsCompleted     bool `json:"is_completed"`
}

type MaterialProgressResponse struct {
	ProgressID              uuid.UUID  `json:"progress_id"`
	ProgressEnrollmentID    uuid.UUID  `json:"progress_enrollment_id"`
	ProgressMaterialID      uuid.UUID  `json:"progress_material_id"`
	ProgressWatchedDuration int        `json:"progress_watched_duration"`
	ProgressIsCompleted     bool       `json:"progress_is_completed"`
	ProgressLastAccessedAt  *time.Time `json:"progress_last_accessed_at,omitempty"`
	ProgressUpdatedAt       *time.Time `json:"progress_updated_at,omitempty"`

	CourseProgressPercent int `json:"course_progress_percent"`
}

func FromMaterialProgressModel(m progressModel.MaterialProgressModel, coursePercent int) MaterialProgressResponse {
	return MaterialProgressResponse{
		ProgressID:              m.ProgressID,
		ProgressEnrollmentID:    m.ProgressEnrollmentID,
		ProgressMaterialID:      m.ProgressMaterialID,
		ProgressWatchedDuration: m.ProgressWatchedDuration,
		ProgressIsCompleted:     m.ProgressIsCompleted,
		ProgressLastAccessedAt:  m.ProgressLastAccessedAt,
		ProgressUpdatedAt:       m.ProgressUpdatedAt,
		CourseProgressPercent:   coursePercent,
	}
}

// TopicProgressItem adalah status satu materi dalam rekap per topik.
type TopicProgressItem struct {
	MaterialID    uuid.UUID `json:"material_id"`
	MaterialTitle string    `json:"material_title"`
	Sequence      int       `json:"sequence"`
	IsCompleted   bool      `json:"is_completed"`
}

type TopicProgressResponse struct {
	TopicID   uuid.UUID           `json:"topic_id"`
	Materials []TopicProgressItem `json:"materials"`
	Completed int                 `json:"completed"`
	Total     int                 `json:"total"`
	Percent   int                 `json:"percent"`
}
