package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusPermit  = "PERMIT"
	StatusSick    = "SICK"
)

var ValidStatuses = []string{StatusPresent, StatusAbsent, StatusPermit, StatusSick}

func ValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceSessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_session_user;column:attendance_session_id" json:"attendance_session_id"`
	AttendanceUserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_session_user;column:attendance_user_id" json:"attendance_user_id"`

	AttendanceStatus      string     `gorm:"type:varchar(10);not null;column:attendance_status" json:"attendance_status"`
	AttendanceCheckInTime *time.Time `gorm:"type:timestamptz;column:attendance_check_in_time" json:"attendance_check_in_time,omitempty"`
	AttendanceNotes       *string    `gorm:"column:attendance_notes" json:"attendance_notes,omitempty"`

	// siapa yang mencatat: user sendiri saat check-in, atau mentor saat bulk/override
	AttendanceMarkedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_marked_by" json:"attendance_marked_by"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
