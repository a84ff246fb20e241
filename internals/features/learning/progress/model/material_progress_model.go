package model

import (
	"time"

	"github.com/google/uuid"
)

type MaterialProgressModel struct {
	ProgressID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:progress_id" json:"progress_id"`
	ProgressEnrollmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_progress_enrollment_material;column:progress_enrollment_id" json:"progress_enrollment_id"`
	ProgressMaterialID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_progress_enrollment_material;column:progress_material_id" json:"progress_material_id"`

	ProgressWatchedDuration int  `gorm:"not null;default:0;column:progress_watched_duration" json:"progress_watched_duration"`
	ProgressIsCompleted     bool `gorm:"not null;default:false;column:progress_is_completed" json:"progress_is_completed"`

	// diset setiap kali mentee menyentuh materi ini
	ProgressLastAccessedAt *time.Time `gorm:"column:progress_last_accessed_at" json:"progress_last_accessed_at,omitempty"`

	ProgressCreatedAt time.Time  `gorm:"column:progress_created_at;autoCreateTime" json:"progress_created_at"`
	ProgressUpdatedAt *time.Time `gorm:"column:progress_updated_at;autoUpdateTime" json:"progress_updated_at,omitempty"`
}

func (MaterialProgressModel) TableName() string { return "material_progress" }
