package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	CategoryID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:category_id" json:"category_id"`
	CategoryName        string    `gorm:"size:100;not null;uniqueIndex;column:category_name" json:"category_name"`
	CategoryDescription *string   `gorm:"column:category_description" json:"category_description,omitempty"`

	CategoryCreatedAt time.Time      `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`
	CategoryUpdatedAt *time.Time     `gorm:"column:category_updated_at;autoUpdateTime" json:"category_updated_at,omitempty"`
	CategoryDeletedAt gorm.DeletedAt `gorm:"column:category_deleted_at;index" json:"category_deleted_at,omitempty"`
}

func (CategoryModel) TableName() string { return "course_categories" }
