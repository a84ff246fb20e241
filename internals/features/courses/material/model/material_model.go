package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeVideo        = "VIDEO"
	TypeDocument     = "DOCUMENT"
	TypeArticle      = "ARTICLE"
	TypeExternalLink = "EXTERNAL_LINK"
)

type MaterialModel struct {
	MaterialID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:material_id" json:"material_id"`
	MaterialTopicID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_material_topic_sequence;column:material_topic_id" json:"material_topic_id"`

	MaterialTitle       string  `gorm:"size:200;not null;column:material_title" json:"material_title"`
	MaterialDescription *string `gorm:"column:material_description" json:"material_description,omitempty"`

	MaterialType string `gorm:"type:varchar(15);not null;column:material_type" json:"material_type"`

	// konten per tipe: VIDEO/DOCUMENT/EXTERNAL_LINK pakai URL, ARTICLE pakai teks
	MaterialContentURL  *string `gorm:"column:material_content_url" json:"material_content_url,omitempty"`
	MaterialContentText *string `gorm:"column:material_content_text" json:"material_content_text,omitempty"`

	// urutan unik per topik
	MaterialSequence int `gorm:"not null;uniqueIndex:uq_material_topic_sequence;column:material_sequence" json:"material_sequence"`

	MaterialCreatedAt time.Time      `gorm:"column:material_created_at;autoCreateTime" json:"material_created_at"`
	MaterialUpdatedAt *time.Time     `gorm:"column:material_updated_at;autoUpdateTime" json:"material_updated_at,omitempty"`
	MaterialDeletedAt gorm.DeletedAt `gorm:"column:material_deleted_at;index" json:"material_deleted_at,omitempty"`
}

func (MaterialModel) TableName() string { return "course_materials" }
