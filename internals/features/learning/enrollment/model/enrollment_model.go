package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentModel struct {
	EnrollmentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`
	EnrollmentUserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_user_course;column:enrollment_user_id" json:"enrollment_user_id"`
	EnrollmentCourseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_user_course;column:enrollment_course_id" json:"enrollment_course_id"`

	// 0-100, dihitung ulang dari material_progress
	EnrollmentProgressPercent int `gorm:"not null;default:0;column:enrollment_progress_percent" json:"enrollment_progress_percent"`

	EnrollmentLastAccessedAt *time.Time `gorm:"type:timestamptz;column:enrollment_last_accessed_at" json:"enrollment_last_accessed_at,omitempty"`
	// diisi sekali saat pertama kali 100%, tidak pernah direset
	EnrollmentCompletedAt *time.Time `gorm:"type:timestamptz;column:enrollment_completed_at" json:"enrollment_completed_at,omitempty"`

	EnrollmentEnrolledAt time.Time  `gorm:"column:enrollment_enrolled_at;autoCreateTime" json:"enrollment_enrolled_at"`
	EnrollmentUpdatedAt  *time.Time `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "course_enrollments" }
