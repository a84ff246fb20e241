package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionTypeOnline  = "ONLINE"
	SessionTypeOffline = "OFFLINE"
)

type SessionModel struct {
	SessionID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:session_id" json:"session_id"`
	SessionClassID uuid.UUID `gorm:"type:uuid;not null;index;column:session_class_id" json:"session_class_id"`

	SessionTitle       string  `gorm:"size:200;not null;column:session_title" json:"session_title"`
	SessionDescription *string `gorm:"column:session_description" json:"session_description,omitempty"`

	SessionStartTime time.Time `gorm:"type:timestamptz;not null;column:session_start_time" json:"session_start_time"`
	SessionEndTime   time.Time `gorm:"type:timestamptz;not null;column:session_end_time" json:"session_end_time"`

	// ONLINE wajib meeting_url; OFFLINE wajib location
	SessionType       string  `gorm:"type:varchar(10);not null;column:session_type" json:"session_type"`
	SessionMeetingURL *string `gorm:"column:session_meeting_url" json:"session_meeting_url,omitempty"`
	SessionLocation   *string `gorm:"column:session_location" json:"session_location,omitempty"`

	// jendela check-in: [start - window, start + close]
	SessionCheckInWindowMinutes int `gorm:"not null;default:15;column:session_check_in_window_minutes" json:"session_check_in_window_minutes"`
	SessionCheckInCloseMinutes  int `gorm:"not null;default:30;column:session_check_in_close_minutes" json:"session_check_in_close_minutes"`

	SessionCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:session_created_by" json:"session_created_by"`

	SessionCreatedAt time.Time      `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt *time.Time     `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at,omitempty"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"session_deleted_at,omitempty"`
}

func (SessionModel) TableName() string { return "class_sessions" }
