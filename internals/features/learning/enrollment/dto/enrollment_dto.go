package dto

import (
	"time"

	"github.com/google/uuid"

	courseDto "belajarshafa_backend/internals/features/courses/course/dto"
	enrollmentModel "belajarshafa_backend/internals/features/learning/enrollment/model"
)

type EnrollRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

type EnrollmentResponse struct {
	EnrollmentID              uuid.UUID  `json:"enrollment_id"`
	EnrollmentUserID          uuid.UUID  `json:"enrollment_user_id"`
	EnrollmentCourseID        uuid.UUID  `json:"enrollment_course_id"`
	EnrollmentProgressPercent int        `json:"enrollment_progress_percent"`
	EnrollmentLastAccessedAt  *time.Time `json:"enrollment_last_accessed_at,omitempty"`
	EnrollmentCompletedAt     *time.Time `json:"enrollment_completed_at,omitempty"`
	EnrollmentEnrolledAt      time.Time  `json:"enrollment_enrolled_at"`

	Course *courseDto.CourseResponse `json:"course,omitempty"`
}

func FromEnrollmentModel(m enrollmentModel.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:              m.EnrollmentID,
		EnrollmentUserID:          m.EnrollmentUserID,
		EnrollmentCourseID:        m.EnrollmentCourseID,
		EnrollmentProgressPercent: m.EnrollmentProgressPercent,
		EnrollmentLastAccessedAt:  m.EnrollmentLastAccessedAt,
		EnrollmentCompletedAt:     m.EnrollmentCompletedAt,
		EnrollmentEnrolledAt:      m.EnrollmentEnrolledAt,
	}
}

func FromEnrollmentModels(ms []enrollmentModel.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromEnrollmentModel(m))
	}
	return out
}
