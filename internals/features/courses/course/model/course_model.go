package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"

	TypePublic  = "PUBLIC"
	TypePrivate = "PRIVATE"
)

type CourseModel struct {
	CourseID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`
	CourseTitle       string    `gorm:"size:200;not null;column:course_title" json:"course_title"`
	CourseDescription *string   `gorm:"column:course_description" json:"course_description,omitempty"`

	CourseLevel string `gorm:"type:varchar(15);not null;default:'BEGINNER';column:course_level" json:"course_level"`
	CourseType  string `gorm:"type:varchar(10);not null;default:'PUBLIC';column:course_type" json:"course_type"`

	CourseCategoryID   *uuid.UUID `gorm:"type:uuid;index;column:course_category_id" json:"course_category_id,omitempty"`
	CourseThumbnailURL *string    `gorm:"column:course_thumbnail_url" json:"course_thumbnail_url,omitempty"`

	CourseIsActive  bool      `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`
	CourseCreatedBy uuid.UUID `gorm:"type:uuid;not null;index;column:course_created_by" json:"course_created_by"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time     `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at,omitempty"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

func ValidLevel(s string) bool {
	return s == LevelBeginner || s == LevelIntermediate || s == LevelAdvanced
}

func ValidType(s string) bool {
	return s == TypePublic || s == TypePrivate
}
